package render

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/covid-map/schema"
	"github.com/bitmark-inc/covid-map/utils"
)

var (
	legendMessage = &i18n.Message{
		ID:    "legend",
		Other: "Total Number of COVID-19 {{.MapType}}",
	}
	popupMessage = &i18n.Message{
		ID:    "popup",
		Other: "{{.Country}}: {{.Value}}{{.Unit}} total {{.Noun}}",
	}
	mapTypeMessages = map[schema.MapType]*i18n.Message{
		schema.MapTypeCases:  {ID: "map_type_cases", Other: "Cases"},
		schema.MapTypeDeaths: {ID: "map_type_deaths", Other: "Deaths"},
	}
	nounMessages = map[schema.MapType]*i18n.Message{
		schema.MapTypeCases:  {ID: "noun_cases", Other: "cases"},
		schema.MapTypeDeaths: {ID: "noun_deaths", Other: "deaths"},
	}
)

// Messages - wording of legend and popups in one language
type Messages struct {
	localizer *i18n.Localizer
}

func NewMessages(lang string) *Messages {
	return &Messages{localizer: utils.NewLocalizer(lang)}
}

func (m *Messages) localize(msg *i18n.Message, data interface{}) string {
	s, err := m.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return s
}

func (m *Messages) Legend(t schema.MapType) string {
	return m.localize(legendMessage, map[string]string{
		"MapType": m.localize(mapTypeMessages[t], nil),
	})
}

// Popup - e.g. "United States: 4.62M total cases"
func (m *Messages) Popup(country string, value, scale float64, unit string, t schema.MapType) string {
	return m.localize(popupMessage, map[string]string{
		"Country": country,
		"Value":   fmt.Sprintf("%.2f", value/scale),
		"Unit":    unit,
		"Noun":    m.localize(nounMessages[t], nil),
	})
}
