package tracker

import (
	"context"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/consts"
	"github.com/bitmark-inc/covid-map/display"
	"github.com/bitmark-inc/covid-map/external/centroid"
	"github.com/bitmark-inc/covid-map/external/geocountries"
	"github.com/bitmark-inc/covid-map/external/geoinfo"
	"github.com/bitmark-inc/covid-map/external/owid"
	"github.com/bitmark-inc/covid-map/geo"
	"github.com/bitmark-inc/covid-map/rank"
	"github.com/bitmark-inc/covid-map/render"
	"github.com/bitmark-inc/covid-map/schema"
)

const logPrefix = "tracker"

var ErrNotFetched = fmt.Errorf("datasets have not been fetched")

// Config - local files and output of a run
type Config struct {
	NameMappingFile string
	ISO2CacheFile   string
	OutputDir       string
	Language        string
}

// Sources - remote datasets. GeoInfo is optional.
type Sources struct {
	OWID      owid.OWID
	Countries geocountries.GeoCountries
	Centroids centroid.Centroid
	GeoInfo   geoinfo.GeoInfo
}

// Tracker draws one covid map
type Tracker struct {
	Params

	config  Config
	sources Sources
	opener  display.Opener

	observations []schema.Observation
	features     []schema.Feature
	centroids    centroid.Centroids
	iso2         schema.ISO2Mapping
	top          []rank.Entry
	mapFile      string
}

// New validates the requested day and map type, which is either "Cases"
// or "Deaths".
func New(config Config, sources Sources, opener display.Opener, year, month, day int, mapType string) (*Tracker, error) {
	params, err := NewParams(year, month, day, mapType)
	if err != nil {
		return nil, err
	}

	if config.NameMappingFile == "" {
		config.NameMappingFile = consts.NameMappingFile
	}
	if config.ISO2CacheFile == "" {
		config.ISO2CacheFile = consts.ISO2CacheFile
	}

	return &Tracker{
		Params:  params,
		config:  config,
		sources: sources,
		opener:  opener,
	}, nil
}

// Fetch downloads the covid figures of the day, the country centroids and
// the country boundaries.
func (t *Tracker) Fetch(ctx context.Context) error {
	observations, err := t.sources.OWID.Fetch(ctx, t.Date)
	if err != nil {
		return fmt.Errorf("covid data: %w", err)
	}

	centroids, err := t.sources.Centroids.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("country centroids: %w", err)
	}

	features, err := t.sources.Countries.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("country geojson: %w", err)
	}

	t.observations = observations
	t.centroids = centroids
	t.features = features

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"observations": len(observations),
		"centroids":    len(centroids),
		"countries":    len(features),
	}).Info("datasets fetched")

	return nil
}

// Reconcile renames the covid locations onto the geometry country names,
// dropping the ones without a country, and loads the iso2 cache.
func (t *Tracker) Reconcile() error {
	if t.features == nil {
		return ErrNotFetched
	}

	mapping, err := geo.LoadNameMapping(t.config.NameMappingFile)
	if err != nil {
		return err
	}

	iso2, created, err := geo.LoadOrCreateISO2Cache(t.config.ISO2CacheFile, t.features)
	if err != nil {
		return err
	}
	if created {
		log.WithFields(log.Fields{"prefix": logPrefix, "file": t.config.ISO2CacheFile}).Info("iso2 cache created")
	}

	resolved, dropped := geo.NewReconciler(mapping, t.features).Apply(t.observations)
	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"resolved": len(resolved),
		"dropped":  len(dropped),
	}).Info("country names reconciled")

	t.observations = resolved
	t.iso2 = iso2
	return nil
}

func (t *Tracker) centroidResolver() geo.CentroidResolver {
	resolvers := []geo.CentroidResolver{geo.NewTableCentroidResolver(t.centroids)}
	if t.sources.GeoInfo != nil {
		resolvers = append(resolvers, geo.NewGeocodingCentroidResolver(t.sources.GeoInfo))
	}
	resolvers = append(resolvers, geo.NewBoundsCentroidResolver(t.features))

	return geo.NewMultipleCentroidResolver(resolvers...)
}

func (t *Tracker) iso2Of(country string) string {
	if code, ok := t.iso2[country]; ok {
		return code
	}
	for _, f := range t.features {
		if f.Name == country {
			return f.ISO2
		}
	}
	return ""
}

// Draw saves the choropleth with a marker on each of the top 10 countries
// and returns the file written.
func (t *Tracker) Draw(ctx context.Context) (string, error) {
	if t.features == nil {
		return "", ErrNotFetched
	}

	t.top = rank.TopN(t.observations, t.MapType, rank.DefaultSize)

	m := render.NewChoropleth(
		t.MapType,
		t.features,
		t.observations,
		rank.Max(t.observations, t.MapType),
		render.NewMessages(t.config.Language),
	)

	resolver := t.centroidResolver()
	for _, e := range t.top {
		c, err := resolver.Centroid(ctx, e.Country, t.iso2Of(e.Country))
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "country": e.Country, "error": err}).Warn("no marker position")
			continue
		}
		m.AddMarker(e.Country, e.Value, c)
	}

	file, err := m.Save(t.config.OutputDir)
	if err != nil {
		return "", err
	}

	t.mapFile = file
	return file, nil
}

// Top returns the countries marked by the last Draw.
func (t *Tracker) Top() []rank.Entry {
	return t.top
}

// Display opens the drawn map.
func (t *Tracker) Display() error {
	file := t.mapFile
	if file == "" {
		file = render.FileName(t.MapType)
		if t.config.OutputDir != "" {
			file = filepath.Join(t.config.OutputDir, file)
		}
	}
	return t.opener.Open(file)
}

// Run fetches, reconciles and draws, then displays the map when open is set.
func (t *Tracker) Run(ctx context.Context, open bool) error {
	if err := t.Fetch(ctx); err != nil {
		return err
	}

	if err := t.Reconcile(); err != nil {
		return err
	}

	if _, err := t.Draw(ctx); err != nil {
		return err
	}

	if !open {
		return nil
	}
	return t.Display()
}
