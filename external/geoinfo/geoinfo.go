package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/covid-map/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrNoGeoInfoFound = fmt.Errorf("no geo information found")

// GeoInfo - interface to look up a country centre through google maps
type GeoInfo interface {
	Get(ctx context.Context, country string) (schema.Centroid, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) Get(ctx context.Context, country string) (schema.Centroid, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"country": country,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  country,
		Language: "en",
	})
	if nil != err {
		return schema.Centroid{}, err
	}

	if len(geos) == 0 {
		return schema.Centroid{}, ErrNoGeoInfoFound
	}

	c := schema.Centroid{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
		Name:      country,
	}
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 && a.Types[0] == "country" {
			c.ISO2 = a.ShortName
		}
	}

	return c, nil
}

// New - new GeoInfo interface
func New(apiKey string, options ...maps.ClientOption) (GeoInfo, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, options...)...)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
