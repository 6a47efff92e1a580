package schema

// Observation - cumulative COVID-19 figures of one location on one day
type Observation struct {
	ISOCode     string   `json:"iso_code"`
	Continent   string   `json:"continent"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	TotalCases  *float64 `json:"total_cases"`
	TotalDeaths *float64 `json:"total_deaths"`
}

// Value returns the cumulative figure selected by the map type and whether
// the dataset reported one.
func (o Observation) Value(t MapType) (float64, bool) {
	var v *float64
	switch t {
	case MapTypeCases:
		v = o.TotalCases
	case MapTypeDeaths:
		v = o.TotalDeaths
	}

	if v == nil {
		return 0, false
	}
	return *v, true
}
