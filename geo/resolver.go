package geo

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitmark-inc/covid-map/external/centroid"
	"github.com/bitmark-inc/covid-map/external/geoinfo"
	"github.com/bitmark-inc/covid-map/schema"
)

var (
	ErrNoCentroidFound = fmt.Errorf("no centroid found")
)

// Natural Earth marks countries without an assigned code with -99
const unknownISO2 = "-99"

// CentroidResolver - interface for resolving where a country marker goes
type CentroidResolver interface {
	Centroid(ctx context.Context, country, iso2 string) (schema.Centroid, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// TableCentroidResolver looks the ISO2 code up in the centroid table.
type TableCentroidResolver struct {
	centroids centroid.Centroids
}

func NewTableCentroidResolver(centroids centroid.Centroids) *TableCentroidResolver {
	return &TableCentroidResolver{
		centroids: centroids,
	}
}

func (r *TableCentroidResolver) Centroid(_ context.Context, country, iso2 string) (schema.Centroid, error) {
	if iso2 == "" || iso2 == unknownISO2 {
		return schema.Centroid{}, fmt.Errorf("%w: %s has no iso2 code", ErrNoCentroidFound, country)
	}

	c, ok := r.centroids[strings.ToUpper(iso2)]
	if !ok {
		return schema.Centroid{}, fmt.Errorf("%w: %s not in centroid table", ErrNoCentroidFound, iso2)
	}
	return c, nil
}

// GeocodingCentroidResolver asks google maps for the country position.
type GeocodingCentroidResolver struct {
	client geoinfo.GeoInfo
}

func NewGeocodingCentroidResolver(client geoinfo.GeoInfo) *GeocodingCentroidResolver {
	return &GeocodingCentroidResolver{
		client: client,
	}
}

func (r *GeocodingCentroidResolver) Centroid(ctx context.Context, country, iso2 string) (schema.Centroid, error) {
	c, err := r.client.Get(ctx, country)
	if err != nil {
		return schema.Centroid{}, err
	}
	if c.ISO2 == "" {
		c.ISO2 = iso2
	}
	return c, nil
}

// BoundsCentroidResolver uses the centre of the country's largest polygon.
type BoundsCentroidResolver struct {
	geometries map[string]schema.Geometry
}

func NewBoundsCentroidResolver(features []schema.Feature) *BoundsCentroidResolver {
	geometries := make(map[string]schema.Geometry, len(features))
	for _, f := range features {
		geometries[f.Name] = f.Geometry
	}

	return &BoundsCentroidResolver{
		geometries: geometries,
	}
}

func (r *BoundsCentroidResolver) Centroid(_ context.Context, country, iso2 string) (schema.Centroid, error) {
	g, ok := r.geometries[country]
	if !ok {
		return schema.Centroid{}, fmt.Errorf("%w: %s has no geometry", ErrNoCentroidFound, country)
	}

	b, err := LargestBounds(g)
	if err != nil {
		return schema.Centroid{}, err
	}

	lat, lng := b.Center()
	return schema.Centroid{
		ISO2:      iso2,
		Latitude:  lat,
		Longitude: lng,
		Name:      country,
	}, nil
}

// MultipleCentroidResolver returns the first successful resolution.
type MultipleCentroidResolver struct {
	resolvers []CentroidResolver
}

func NewMultipleCentroidResolver(resolvers ...CentroidResolver) *MultipleCentroidResolver {
	return &MultipleCentroidResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleCentroidResolver) Centroid(ctx context.Context, country, iso2 string) (schema.Centroid, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Centroid(ctx, country, iso2)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.Centroid{}, NewMultipleResolverErrors(errors)
}
