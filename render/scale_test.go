package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-map/schema"
)

func TestUnits(t *testing.T) {
	testCases := []struct {
		num   float64
		scale float64
		unit  string
	}{
		{0, 1, ""},
		{12, 1, ""},
		{999, 1, ""},
		{1000, 1e3, "K"},
		{154447, 1e3, "K"},
		{999999.9, 1e3, "K"},
		{4620444, 1e6, "M"},
		{17577994, 1e6, "M"},
		{1234567890, 1e9, "B"},
		{123456789012, 1e9, "B"},
		{98765432109876, 1e9, "B"},
	}

	for _, tc := range testCases {
		scale, unit := Units(tc.num)
		assert.Equal(t, tc.scale, scale, "wrong scale of %f", tc.num)
		assert.Equal(t, tc.unit, unit, "wrong unit of %f", tc.num)
	}
}

func TestBins(t *testing.T) {
	assert.Equal(t, []float64{0, 1e6, 2e6, 3e6, 4e6, 5e6}, Bins(4620444, 1e6))

	empty := Bins(0, 1)
	assert.Len(t, empty, binCount)
	assert.Equal(t, 0.0, empty[0])
	assert.Equal(t, 1.0, empty[binCount-1], "an all zero map still needs a range")
}

func TestColor(t *testing.T) {
	bins := Bins(4620444, 1e6)
	colors := Palette(schema.MapTypeCases)

	assert.Equal(t, "#ffffb2", Color(bins, colors, 0))
	assert.Equal(t, "#ffffb2", Color(bins, colors, 1e6))
	assert.Equal(t, "#fecc5c", Color(bins, colors, 1e6+1))
	assert.Equal(t, "#bd0026", Color(bins, colors, 4620444))
	assert.Equal(t, "#bd0026", Color(bins, colors, 9e9))
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette(schema.MapTypeCases), binCount-1)
	assert.Len(t, Palette(schema.MapTypeDeaths), binCount-1)
	assert.NotEqual(t, Palette(schema.MapTypeCases), Palette(schema.MapTypeDeaths))
}
