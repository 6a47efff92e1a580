package geocountries_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-map/external/geocountries"
)

const fixture = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"ADMIN": "Peru", "ISO_A2": "PE"},
     "geometry": {"type": "Polygon", "coordinates": [[[-81.4, -4.7], [-70.0, -4.7], [-70.0, -18.3], [-81.4, -4.7]]]}},
    {"type": "Feature", "properties": {"name": "Norway", "ISO3166-1-Alpha-2": "NO"},
     "geometry": {"type": "MultiPolygon", "coordinates": [[[[5.0, 58.0], [31.0, 58.0], [31.0, 71.0], [5.0, 58.0]]]]}},
    {"type": "Feature", "properties": {"ADMIN": "Atlantis"}, "geometry": null}
  ]
}`

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixture))
	}))
	defer ts.Close()

	g := geocountries.New(ts.Client(), ts.URL, nil, nil)
	actual, err := g.Fetch(context.Background())
	assert.NoError(t, err, "wrong Fetch")
	assert.Len(t, actual, 2, "feature without geometry should be skipped")

	assert.Equal(t, "Peru", actual[0].Name)
	assert.Equal(t, "PE", actual[0].ISO2)
	assert.Equal(t, "Polygon", actual[0].Geometry.Type)

	assert.Equal(t, "Norway", actual[1].Name, "fallback name key")
	assert.Equal(t, "NO", actual[1].ISO2, "fallback iso2 key")
	assert.Equal(t, "MultiPolygon", actual[1].Geometry.Type)
}

func TestFetchInvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": [`))
	}))
	defer ts.Close()

	g := geocountries.New(ts.Client(), ts.URL, nil, nil)
	_, err := g.Fetch(context.Background())
	assert.True(t, errors.Is(err, geocountries.ErrInvalidGeoJSON), "wrong error: %v", err)
}

func TestFetchFeatureWithoutName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": [{"properties": {"ISO_A2": "PE"}, "geometry": {"type": "Point", "coordinates": [0, 0]}}]}`))
	}))
	defer ts.Close()

	g := geocountries.New(ts.Client(), ts.URL, []string{"ADMIN"}, nil)
	_, err := g.Fetch(context.Background())
	assert.True(t, errors.Is(err, geocountries.ErrInvalidGeoJSON), "wrong error: %v", err)
}
