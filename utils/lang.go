package utils

import (
	"io/ioutil"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle loads every yaml message file found in dir. English
// defaults compiled into the callers are used when dir is empty or missing.
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if dir != "" {
		files, err := ioutil.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		for _, f := range files {
			if f.IsDir() || path.Ext(f.Name()) != ".yaml" {
				continue
			}
			if _, err := b.LoadMessageFile(path.Join(dir, f.Name())); err != nil {
				return err
			}
			log.WithFields(log.Fields{"prefix": "i18n", "file": f.Name()}).Debug("loaded message file")
		}
	}

	bundle = b
	return nil
}

// NewLocalizer returns a localizer of the loaded bundle, or of an empty
// English bundle if none was loaded.
func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	}
	return i18n.NewLocalizer(bundle, lang)
}
