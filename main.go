package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-map/consts"
	"github.com/bitmark-inc/covid-map/display"
	"github.com/bitmark-inc/covid-map/external/centroid"
	"github.com/bitmark-inc/covid-map/external/geocountries"
	"github.com/bitmark-inc/covid-map/external/geoinfo"
	"github.com/bitmark-inc/covid-map/external/owid"
	"github.com/bitmark-inc/covid-map/geo"
	"github.com/bitmark-inc/covid-map/tracker"
	"github.com/bitmark-inc/covid-map/utils"
)

const logPrefix = "main"

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env")
	}

	viper.SetDefault("http.timeout", 2*time.Minute)
	viper.SetDefault("files.name_mapping", consts.NameMappingFile)
	viper.SetDefault("files.iso2_cache", consts.ISO2CacheFile)
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("map.language", "en")
	viper.SetDefault("i18n.dir", "i18n")
	viper.SetDefault("browser.open", true)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covidmap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// fatal reports err to sentry when configured and exits.
func fatal(err error) {
	sentry.CaptureException(err)
	sentry.Flush(5 * time.Second)
	log.WithField("prefix", logPrefix).Fatal(err)
}

func writeISO2Cache(ctx context.Context, countries geocountries.GeoCountries, file string) error {
	features, err := countries.Fetch(ctx)
	if err != nil {
		return err
	}

	if err := geo.WriteISO2Cache(file, geo.BuildISO2Mapping(features)); err != nil {
		return err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "file": file, "countries": len(features)}).Info("iso2 cache written")
	return nil
}

func main() {
	var (
		configFile string
		year       int
		month      int
		day        int
		mapType    string
		writeISO2  bool
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.WithField("prefix", logPrefix).Info("Cancelling")
		cancel()
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.IntVar(&year, "year", 0, "year of the map, defaults to today")
	flag.IntVar(&month, "month", 0, "month of the map, defaults to today")
	flag.IntVar(&day, "day", 0, "day of the map, defaults to today")
	flag.StringVar(&mapType, "type", "Cases", `map type, "Cases" or "Deaths"`)
	flag.BoolVar(&writeISO2, "write-iso2", false, "regenerate the country iso2 cache and exit")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		fatal(err)
	}
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	httpClient := &http.Client{
		Timeout: viper.GetDuration("http.timeout"),
	}

	countries := geocountries.New(
		httpClient,
		viper.GetString("geojson.url"),
		viper.GetStringSlice("geojson.name_keys"),
		viper.GetStringSlice("geojson.iso2_keys"),
	)

	if writeISO2 {
		if err := writeISO2Cache(ctx, countries, viper.GetString("files.iso2_cache")); err != nil {
			fatal(err)
		}
		return
	}

	sources := tracker.Sources{
		OWID:      owid.New(httpClient, viper.GetString("covid.url")),
		Countries: countries,
		Centroids: centroid.New(httpClient, viper.GetString("centroid.url")),
	}

	if apiKey := viper.GetString("google.map_apikey"); apiKey != "" {
		g, err := geoinfo.New(apiKey)
		if err != nil {
			fatal(err)
		}
		sources.GeoInfo = g
		log.WithField("prefix", "init").Info("Initialized google geocoding")
	}

	opener, err := display.New(viper.GetString("browser.command"))
	if err != nil {
		fatal(err)
	}

	t, err := tracker.New(tracker.Config{
		NameMappingFile: viper.GetString("files.name_mapping"),
		ISO2CacheFile:   viper.GetString("files.iso2_cache"),
		OutputDir:       viper.GetString("output.dir"),
		Language:        viper.GetString("map.language"),
	}, sources, opener, year, month, day, mapType)
	if err != nil {
		fatal(err)
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"date":     t.Date.Format(consts.DateLayout),
		"map_type": t.MapType,
	}).Info("drawing covid map")

	if err := t.Run(ctx, viper.GetBool("browser.open")); err != nil {
		fatal(err)
	}
}
