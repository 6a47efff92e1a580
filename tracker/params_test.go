package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow() func() {
	timeNow = func() time.Time {
		return time.Date(2020, 8, 15, 13, 0, 0, 0, time.UTC)
	}
	return func() { timeNow = time.Now }
}

func TestParseDate(t *testing.T) {
	defer fixedNow()()

	d, err := ParseDate(2020, 8, 1)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate(0, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC), d, "no date means today")

	d, err = ParseDate(2021, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC), d, "future date should be clamped")
}

func TestParseDateBeforeDataset(t *testing.T) {
	defer fixedNow()()

	_, err := ParseDate(2020, 1, 15)
	assert.True(t, errors.Is(err, ErrDateOutOfRange), "wrong error: %v", err)

	_, err = ParseDate(2020, 3, 1)
	assert.NoError(t, err)
}

func TestParseDateInvalid(t *testing.T) {
	defer fixedNow()()

	for _, d := range [][3]int{{2020, 2, 30}, {2020, 13, 1}, {2020, 0, 10}, {-1, 5, 5}} {
		_, err := ParseDate(d[0], d[1], d[2])
		assert.True(t, errors.Is(err, ErrInvalidDate), "wrong error for %v: %v", d, err)
	}
}

func TestNewParams(t *testing.T) {
	defer fixedNow()()

	p, err := NewParams(2020, 8, 1, "Deaths")
	assert.NoError(t, err)
	assert.Equal(t, "Deaths", string(p.MapType))

	_, err = NewParams(2020, 1, 1, "Recovered")
	assert.True(t, errors.Is(err, ErrDateOutOfRange))
	assert.True(t, errors.Is(err, ErrInvalidMapType), "every problem should be reported")
}
