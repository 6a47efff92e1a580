package utils

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
)

var legendMessage = &i18n.Message{ID: "legend", Other: "Total Number of COVID-19 {{.MapType}}"}

func TestNewLocalizerDefaultMessage(t *testing.T) {
	bundle = nil

	msg, err := NewLocalizer("en").Localize(&i18n.LocalizeConfig{
		DefaultMessage: legendMessage,
		TemplateData:   map[string]string{"MapType": "Cases"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Total Number of COVID-19 Cases", msg)
}

func TestInitI18NBundle(t *testing.T) {
	dir, err := ioutil.TempDir("", "i18n")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	err = ioutil.WriteFile(path.Join(dir, "zh_tw.yaml"), []byte("legend: \"COVID-19 {{.MapType}} 總數\"\n"), 0644)
	assert.NoError(t, err)
	err = ioutil.WriteFile(path.Join(dir, "README"), []byte("ignored"), 0644)
	assert.NoError(t, err)

	assert.NoError(t, InitI18NBundle(dir))

	msg, err := NewLocalizer("zh-TW").Localize(&i18n.LocalizeConfig{
		DefaultMessage: legendMessage,
		TemplateData:   map[string]string{"MapType": "Cases"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "COVID-19 Cases 總數", msg)
}

func TestInitI18NBundleMissingDir(t *testing.T) {
	assert.NoError(t, InitI18NBundle("/nonexistent/i18n"))
}
