package render

import (
	"bytes"
	"html/template"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/schema"
)

const logPrefix = "render"

var (
	mapCenter = [2]float64{25, 10}
	mapZoom   = 3
)

var pageTemplate = template.Must(template.New("map").Parse(mapPage))

type featureProperties struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
	Fill  string   `json:"fill"`
}

type layerFeature struct {
	Type       string            `json:"type"`
	Properties featureProperties `json:"properties"`
	Geometry   schema.Geometry   `json:"geometry"`
}

type layer struct {
	Type     string         `json:"type"`
	Features []layerFeature `json:"features"`
}

type legendEntry struct {
	Color string  `json:"color"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
}

// Marker - popup pinned on a country centroid
type Marker struct {
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Popup     string  `json:"popup"`
}

// Choropleth - countries shaded by their cumulative figure
type Choropleth struct {
	MapType schema.MapType
	Title   string
	Legend  string
	Center  [2]float64
	Zoom    int
	Scale   float64
	Unit    string
	Bins    []float64
	Colors  []string
	Layer   layer
	Markers []Marker

	messages *Messages
}

// NewChoropleth joins the reconciled observations onto the features by
// country name. Features without a figure are drawn in the missing colour.
func NewChoropleth(t schema.MapType, features []schema.Feature, observations []schema.Observation, max float64, messages *Messages) *Choropleth {
	scale, unit := Units(max)
	bins := Bins(max, scale)
	colors := Palette(t)

	values := make(map[string]float64, len(observations))
	for _, o := range observations {
		if v, ok := o.Value(t); ok {
			values[o.Location] = v
		}
	}

	l := layer{Type: "FeatureCollection", Features: make([]layerFeature, 0, len(features))}
	for _, f := range features {
		p := featureProperties{Name: f.Name, Fill: missingColor}
		if v, ok := values[f.Name]; ok {
			value := v
			p.Value = &value
			p.Fill = Color(bins, colors, v)
		}
		l.Features = append(l.Features, layerFeature{
			Type:       "Feature",
			Properties: p,
			Geometry:   f.Geometry,
		})
	}

	legend := messages.Legend(t)
	return &Choropleth{
		MapType:  t,
		Title:    legend,
		Legend:   legend,
		Center:   mapCenter,
		Zoom:     mapZoom,
		Scale:    scale,
		Unit:     unit,
		Bins:     bins,
		Colors:   colors,
		Layer:    l,
		Markers:  []Marker{},
		messages: messages,
	}
}

// AddMarker pins the popup of a country at c.
func (m *Choropleth) AddMarker(country string, value float64, c schema.Centroid) {
	m.Markers = append(m.Markers, Marker{
		Country:   country,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Popup:     m.messages.Popup(country, value, m.Scale, m.Unit, m.MapType),
	})
}

// LegendEntries pairs each colour with its value range.
func (m *Choropleth) LegendEntries() []legendEntry {
	entries := make([]legendEntry, 0, len(m.Colors))
	for i, c := range m.Colors {
		if i+1 >= len(m.Bins) {
			break
		}
		entries = append(entries, legendEntry{Color: c, From: m.Bins[i], To: m.Bins[i+1]})
	}
	return entries
}

func (m *Choropleth) Render(w io.Writer) error {
	return pageTemplate.Execute(w, m)
}

// FileName - e.g. CovidCases.html
func FileName(t schema.MapType) string {
	return "Covid" + string(t) + ".html"
}

// Save renders the page into dir and returns the absolute file path.
func (m *Choropleth) Save(dir string) (string, error) {
	buf := &bytes.Buffer{}
	if err := m.Render(buf); err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	file, err := filepath.Abs(filepath.Join(dir, FileName(m.MapType)))
	if err != nil {
		return "", err
	}
	if err := ioutil.WriteFile(file, buf.Bytes(), 0644); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"file":    file,
		"markers": len(m.Markers),
	}).Info("map saved")

	return file, nil
}
