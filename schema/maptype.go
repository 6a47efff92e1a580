package schema

import (
	"fmt"
	"strings"
)

// MapType - which cumulative figure a map is drawn for
type MapType string

const (
	MapTypeCases  MapType = "Cases"
	MapTypeDeaths MapType = "Deaths"
)

var ErrInvalidMapType = fmt.Errorf(`map type should be either "Cases" or "Deaths"`)

// ParseMapType accepts the exact names only.
func ParseMapType(s string) (MapType, error) {
	switch t := MapType(s); t {
	case MapTypeCases, MapTypeDeaths:
		return t, nil
	}
	return "", ErrInvalidMapType
}

// Column is the OWID csv column holding the figure.
func (t MapType) Column() string {
	return "total_" + strings.ToLower(string(t))
}

// Noun is the lower case word used in popups, e.g. "cases".
func (t MapType) Noun() string {
	return strings.ToLower(string(t))
}
