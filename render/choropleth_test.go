package render

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-map/schema"
)

func float(f float64) *float64 {
	return &f
}

var (
	features = []schema.Feature{
		{Name: "United States of America", ISO2: "US", Geometry: schema.Geometry{Type: "Polygon", Coordinates: json.RawMessage(`[[[-124, 48], [-67, 48], [-67, 25], [-124, 48]]]`)}},
		{Name: "Peru", ISO2: "PE", Geometry: schema.Geometry{Type: "Polygon", Coordinates: json.RawMessage(`[[[-81, -4], [-70, -4], [-70, -18], [-81, -4]]]`)}},
		{Name: "Antarctica", ISO2: "AQ", Geometry: schema.Geometry{Type: "Polygon", Coordinates: json.RawMessage(`[[[-180, -90], [180, -90], [180, -60], [-180, -90]]]`)}},
	}
	observations = []schema.Observation{
		{Location: "United States of America", TotalCases: float(4620444), TotalDeaths: float(154447)},
		{Location: "Peru", TotalCases: float(422183), TotalDeaths: float(19217)},
	}
)

func TestMessages(t *testing.T) {
	m := NewMessages("en")
	assert.Equal(t, "Total Number of COVID-19 Deaths", m.Legend(schema.MapTypeDeaths))
	assert.Equal(t, "United States of America: 4.62M total cases", m.Popup("United States of America", 4620444, 1e6, "M", schema.MapTypeCases))
	assert.Equal(t, "Peru: 19.22K total deaths", m.Popup("Peru", 19217, 1e3, "K", schema.MapTypeDeaths))
}

func TestNewChoropleth(t *testing.T) {
	c := NewChoropleth(schema.MapTypeCases, features, observations, 4620444, NewMessages("en"))

	assert.Equal(t, 1e6, c.Scale)
	assert.Equal(t, "M", c.Unit)
	assert.Equal(t, "Total Number of COVID-19 Cases", c.Legend)
	assert.Len(t, c.Layer.Features, 3)

	us := c.Layer.Features[0].Properties
	assert.Equal(t, 4620444.0, *us.Value)
	assert.Equal(t, "#bd0026", us.Fill)

	peru := c.Layer.Features[1].Properties
	assert.Equal(t, "#ffffb2", peru.Fill)

	antarctica := c.Layer.Features[2].Properties
	assert.Nil(t, antarctica.Value)
	assert.Equal(t, missingColor, antarctica.Fill)

	assert.Len(t, c.LegendEntries(), 5)
	assert.Equal(t, 4e6, c.LegendEntries()[4].From)
}

func TestRender(t *testing.T) {
	c := NewChoropleth(schema.MapTypeCases, features, observations, 4620444, NewMessages("en"))
	c.AddMarker("United States of America", 4620444, schema.Centroid{ISO2: "US", Latitude: 37.09024, Longitude: -95.712891})

	buf := &bytes.Buffer{}
	assert.NoError(t, c.Render(buf))

	page := buf.String()
	assert.Contains(t, page, "<title>Total Number of COVID-19 Cases</title>")
	assert.Contains(t, page, "leaflet.js")
	assert.Contains(t, page, `"popup":"United States of America: 4.62M total cases"`)
	assert.Contains(t, page, `"lat":37.09024`)
	assert.Contains(t, page, `"fill":"#bd0026"`)
}

func TestSave(t *testing.T) {
	dir, err := ioutil.TempDir("", "render")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	c := NewChoropleth(schema.MapTypeDeaths, features, observations, 154447, NewMessages("en"))
	file, err := c.Save(filepath.Join(dir, "maps"))
	assert.NoError(t, err)
	assert.Equal(t, "CovidDeaths.html", filepath.Base(file))
	assert.True(t, filepath.IsAbs(file))

	_, err = os.Stat(file)
	assert.NoError(t, err)
}
