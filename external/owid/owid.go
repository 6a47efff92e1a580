package owid

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/consts"
	"github.com/bitmark-inc/covid-map/schema"
)

const (
	logPrefix = "owid"
)

var (
	ErrMalformedDataset = fmt.Errorf("malformed owid dataset")
	ErrDateUnavailable  = fmt.Errorf("requested date not available")
)

var requiredColumns = []string{"iso_code", "location", "date", "total_cases", "total_deaths"}

// DateRangeError - the requested day is outside the dataset
type DateRangeError struct {
	Requested string
	Earliest  string
	Latest    string
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("requested date %s not available. Latest date available is %s while earliest is %s",
		e.Requested, e.Latest, e.Earliest)
}

func (e *DateRangeError) Unwrap() error {
	return ErrDateUnavailable
}

// OWID - interface to fetch one day of the OWID covid dataset
type OWID interface {
	Fetch(ctx context.Context, date time.Time) ([]schema.Observation, error)
}

type owid struct {
	client *http.Client
	url    string
}

// Fetch streams the csv and keeps the country rows reported on date.
func (o owid) Fetch(ctx context.Context, date time.Time) ([]schema.Observation, error) {
	req, err := http.NewRequest(http.MethodGet, o.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req.WithContext(ctx))
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": o.url, "error": err}).Error("get owid covid csv")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("covid data is unavailable at source: http status %d", resp.StatusCode)
	}

	observations, err := parse(resp.Body, date.Format(consts.DateLayout))
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"date":   date.Format(consts.DateLayout),
		"count":  len(observations),
	}).Debug("data from OWID")

	return observations, nil
}

func parse(r io.Reader, day string) ([]schema.Observation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDataset, err)
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %s", ErrMalformedDataset, name)
		}
	}

	var earliest, latest string
	observations := []schema.Observation{}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedDataset, err)
		}

		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		date := get("date")
		if date == "" {
			continue
		}
		if earliest == "" || date < earliest {
			earliest = date
		}
		if date > latest {
			latest = date
		}
		if date != day {
			continue
		}

		iso := get("iso_code")
		location := get("location")
		if location == consts.World || strings.HasPrefix(iso, consts.OWIDAggregatePrefix) {
			continue
		}

		cases, err := parseFloat(get("total_cases"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: total_cases: %s", ErrMalformedDataset, line, err)
		}
		deaths, err := parseFloat(get("total_deaths"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: total_deaths: %s", ErrMalformedDataset, line, err)
		}

		observations = append(observations, schema.Observation{
			ISOCode:     iso,
			Continent:   get("continent"),
			Location:    location,
			Date:        date,
			TotalCases:  cases,
			TotalDeaths: deaths,
		})
	}

	if len(observations) == 0 {
		return nil, &DateRangeError{Requested: day, Earliest: earliest, Latest: latest}
	}

	return observations, nil
}

// parseFloat treats an empty cell as a missing value.
func parseFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// New - new OWID dataset client
func New(client *http.Client, url string) OWID {
	u := consts.OWIDCovidURL
	if url != "" {
		u = url
	}

	return &owid{
		client: client,
		url:    u,
	}
}
