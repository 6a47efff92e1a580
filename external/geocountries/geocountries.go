package geocountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/consts"
	"github.com/bitmark-inc/covid-map/schema"
)

const (
	logPrefix = "geojson"
)

var (
	DefaultNameKeys = []string{"ADMIN", "name"}
	DefaultISO2Keys = []string{"ISO_A2", "ISO3166-1-Alpha-2"}
)

var ErrInvalidGeoJSON = fmt.Errorf("invalid country geojson")

type geoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   *schema.Geometry       `json:"geometry"`
}

type geoJSON struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// GeoCountries - interface to fetch country boundaries
type GeoCountries interface {
	Fetch(ctx context.Context) ([]schema.Feature, error)
}

type geoCountries struct {
	client   *http.Client
	url      string
	nameKeys []string
	iso2Keys []string
}

func (g geoCountries) Fetch(ctx context.Context) ([]schema.Feature, error) {
	data, err := g.getGeoJSON(ctx)
	if err != nil {
		return nil, err
	}

	var result geoJSON
	if err := json.Unmarshal(data, &result); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("decode geojson")
		return nil, fmt.Errorf("%w: %s", ErrInvalidGeoJSON, err)
	}

	return decode(result.Features, g.nameKeys, g.iso2Keys)
}

func (g geoCountries) getGeoJSON(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, g.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req.WithContext(ctx))
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": g.url, "error": err}).Error("get country geojson")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geojson data unavailable to draw country polygons: http status %d", resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read country geojson response")
		return nil, err
	}
	return data, nil
}

// decode turns raw features into country features. Features without a
// name are rejected, a missing ISO2 code is left empty.
func decode(features []geoFeature, nameKeys, iso2Keys []string) ([]schema.Feature, error) {
	countries := make([]schema.Feature, 0, len(features))
	for i, f := range features {
		name := property(f.Properties, nameKeys)
		if name == "" {
			return nil, fmt.Errorf("%w: feature %d has no country name in %v", ErrInvalidGeoJSON, i, nameKeys)
		}
		if f.Geometry == nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "country": name}).Warn("feature without geometry")
			continue
		}

		countries = append(countries, schema.Feature{
			Name:     name,
			ISO2:     property(f.Properties, iso2Keys),
			Geometry: *f.Geometry,
		})
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "count": len(countries)}).Debug("country features")

	return countries, nil
}

func property(properties map[string]interface{}, keys []string) string {
	for _, k := range keys {
		if v, ok := properties[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// New - new country geojson client, empty keys fall back to the defaults
func New(client *http.Client, url string, nameKeys, iso2Keys []string) GeoCountries {
	u := consts.CountriesGeoJSONURL
	if url != "" {
		u = url
	}
	if len(nameKeys) == 0 {
		nameKeys = DefaultNameKeys
	}
	if len(iso2Keys) == 0 {
		iso2Keys = DefaultISO2Keys
	}

	return &geoCountries{
		client:   client,
		url:      u,
		nameKeys: nameKeys,
		iso2Keys: iso2Keys,
	}
}
