package render

import (
	"math"
	"strconv"

	"github.com/bitmark-inc/covid-map/schema"
)

const binCount = 6

var units = map[int]string{9: "B", 6: "M", 3: "K", 0: ""}

// Units returns the power of thousand a number is best shown in and its
// suffix, e.g. 4620444 -> (1e6, "M").
func Units(num float64) (float64, string) {
	s := strconv.FormatInt(int64(math.Abs(num)), 10)

	digits := len(s) - len(s)%3
	if len(s)%3 == 0 {
		digits = len(s) - 3
	}
	if digits > 9 {
		digits = 9
	}

	return math.Pow10(digits), units[digits]
}

// Bins returns six evenly spaced edges from 0 to max rounded up to scale.
func Bins(max, scale float64) []float64 {
	upper := math.Ceil(max/scale) * scale
	if upper <= 0 {
		upper = scale
	}

	bins := make([]float64, binCount)
	step := upper / (binCount - 1)
	for i := range bins {
		bins[i] = step * float64(i)
	}
	bins[binCount-1] = upper
	return bins
}

// ColorBrewer sequential schemes, five classes
var palettes = map[schema.MapType][]string{
	schema.MapTypeCases:  {"#ffffb2", "#fecc5c", "#fd8d3c", "#f03b20", "#bd0026"},
	schema.MapTypeDeaths: {"#f1eef6", "#d7b5d8", "#df65b0", "#dd1c77", "#980043"},
}

const missingColor = "black"

// Palette - YlOrRd for cases, PuRd for deaths
func Palette(t schema.MapType) []string {
	return palettes[t]
}

// Color picks the class of v; values above the last edge take the top class.
func Color(bins []float64, colors []string, v float64) string {
	for i := 1; i < len(bins) && i <= len(colors); i++ {
		if v <= bins[i] {
			return colors[i-1]
		}
	}
	return colors[len(colors)-1]
}
