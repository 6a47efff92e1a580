package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameKey(t *testing.T) {
	mapping := map[string]string{
		"Côte d'Ivoire":          "cote_divoire",
		"Cote d'Ivoire":          "cote_divoire",
		"Curaçao":                "curacao",
		"United States":          "united_states",
		"united  states ":        "united_states",
		"Guinea-Bissau":          "guinea_bissau",
		"São Tomé and Príncipe":  "sao_tome_and_principe",
		"Bosnia and Herzegovina": "bosnia_and_herzegovina",
		"Trinidad & Tobago":      "trinidad_tobago",
	}

	for name, key := range mapping {
		assert.Equal(t, key, NameKey(name), "wrong key for %s", name)
	}
}
