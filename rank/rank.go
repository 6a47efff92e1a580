package rank

import (
	"sort"

	"github.com/bitmark-inc/covid-map/schema"
)

// DefaultSize is the number of countries marked on a map.
const DefaultSize = 10

// Entry - a country and its figure in a ranking
type Entry struct {
	Country string
	Value   float64
}

// TopN returns at most n countries with the highest reported value,
// descending. Ties keep the dataset order, missing values are skipped and a
// country is listed once.
func TopN(observations []schema.Observation, t schema.MapType, n int) []Entry {
	seen := make(map[string]struct{}, len(observations))
	entries := make([]Entry, 0, len(observations))

	for _, o := range observations {
		v, ok := o.Value(t)
		if !ok {
			continue
		}
		if _, dup := seen[o.Location]; dup {
			continue
		}
		seen[o.Location] = struct{}{}
		entries = append(entries, Entry{Country: o.Location, Value: v})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Max returns the highest reported value, 0 when nothing is reported.
func Max(observations []schema.Observation, t schema.MapType) float64 {
	max := 0.0
	for _, o := range observations {
		if v, ok := o.Value(t); ok && v > max {
			max = v
		}
	}
	return max
}
