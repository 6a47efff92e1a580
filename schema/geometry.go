package schema

import "encoding/json"

// Geometry - raw GeoJSON geometry, kept undecoded for the map layer
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Feature - one country boundary from the geometry dataset
type Feature struct {
	Name     string   `json:"name"`
	ISO2     string   `json:"iso2"`
	Geometry Geometry `json:"geometry"`
}

// Centroid - central coordinate of a country keyed by its ISO2 code
type Centroid struct {
	ISO2      string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}
