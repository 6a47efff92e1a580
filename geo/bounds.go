package geo

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/covid-map/schema"
)

var ErrUnsupportedGeometry = fmt.Errorf("unsupported geometry")

// Bounds - lng/lat bounding box
type Bounds struct {
	MinLng, MinLat, MaxLng, MaxLat float64
}

func (b Bounds) Center() (lat, lng float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLng + b.MaxLng) / 2
}

func (b Bounds) area() float64 {
	return (b.MaxLng - b.MinLng) * (b.MaxLat - b.MinLat)
}

// LargestBounds returns the bounding box of the outer ring of a Polygon, or
// of the largest outer ring of a MultiPolygon.
func LargestBounds(g schema.Geometry) (Bounds, error) {
	var rings [][][]float64

	switch g.Type {
	case "Polygon":
		var polygon [][][]float64
		if err := json.Unmarshal(g.Coordinates, &polygon); err != nil {
			return Bounds{}, err
		}
		if len(polygon) > 0 {
			rings = append(rings, polygon[0])
		}
	case "MultiPolygon":
		var polygons [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polygons); err != nil {
			return Bounds{}, err
		}
		for _, p := range polygons {
			if len(p) > 0 {
				rings = append(rings, p[0])
			}
		}
	default:
		return Bounds{}, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.Type)
	}

	var largest Bounds
	found := false
	for _, ring := range rings {
		b, ok := ringBounds(ring)
		if !ok {
			continue
		}
		if !found || b.area() > largest.area() {
			largest = b
			found = true
		}
	}

	if !found {
		return Bounds{}, fmt.Errorf("%w: empty %s", ErrUnsupportedGeometry, g.Type)
	}
	return largest, nil
}

func ringBounds(ring [][]float64) (Bounds, bool) {
	var b Bounds
	found := false
	for _, p := range ring {
		if len(p) < 2 {
			continue
		}
		lng, lat := p[0], p[1]
		if !found {
			b = Bounds{MinLng: lng, MinLat: lat, MaxLng: lng, MaxLat: lat}
			found = true
			continue
		}
		if lng < b.MinLng {
			b.MinLng = lng
		}
		if lng > b.MaxLng {
			b.MaxLng = lng
		}
		if lat < b.MinLat {
			b.MinLat = lat
		}
		if lat > b.MaxLat {
			b.MaxLat = lat
		}
	}
	return b, found
}
