package tracker

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-map/consts"
	"github.com/bitmark-inc/covid-map/schema"
)

var (
	ErrInvalidDate    = fmt.Errorf("invalid date entry")
	ErrDateOutOfRange = fmt.Errorf("date is before the covid dataset starts")
	ErrInvalidMapType = schema.ErrInvalidMapType
)

var earliestDate, _ = time.Parse(consts.DateLayout, consts.EarliestDate)

var timeNow = time.Now

// ParseDate validates a calendar date. All zero means today, a future date
// is clamped to today.
func ParseDate(year, month, day int) (time.Time, error) {
	y, m, d := timeNow().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	if year == 0 && month == 0 && day == 0 {
		return today, nil
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if year <= 0 || date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}

	if date.After(today) {
		log.WithFields(log.Fields{"prefix": logPrefix, "date": date.Format(consts.DateLayout)}).Warn("can't input future date, date defaulted to today")
		return today, nil
	}

	if date.Before(earliestDate) {
		return time.Time{}, fmt.Errorf("%w: %s is before %s", ErrDateOutOfRange, date.Format(consts.DateLayout), consts.EarliestDate)
	}

	return date, nil
}

// Params - what map to draw
type Params struct {
	Date    time.Time
	MapType schema.MapType
}

// NewParams reports every invalid input at once.
func NewParams(year, month, day int, mapType string) (Params, error) {
	var result *multierror.Error

	date, err := ParseDate(year, month, day)
	if err != nil {
		result = multierror.Append(result, err)
	}

	t, err := schema.ParseMapType(mapType)
	if err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return Params{}, err
	}

	return Params{Date: date, MapType: t}, nil
}
