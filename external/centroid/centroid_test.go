package centroid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-map/external/centroid"
)

const page = `<html><body>
<h1>countries.csv</h1>
<table>
  <tr><th>country</th><th>latitude</th><th>longitude</th><th>name</th></tr>
  <tr><td>AD</td><td>42.546245</td><td>1.601554</td><td>Andorra</td></tr>
  <tr><td>pe</td><td>-9.189967</td><td>-75.015152</td><td>Peru</td></tr>
  <tr><td>UM</td><td></td><td></td><td>U.S. Minor Outlying Islands</td></tr>
</table>
</body></html>`

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer ts.Close()

	c := centroid.New(ts.Client(), ts.URL)
	actual, err := c.Fetch(context.Background())
	assert.NoError(t, err, "wrong Fetch")
	assert.Len(t, actual, 2, "row without coordinates should be skipped")

	assert.Equal(t, 42.546245, actual["AD"].Latitude)
	assert.Equal(t, 1.601554, actual["AD"].Longitude)
	assert.Equal(t, "Andorra", actual["AD"].Name)
	assert.Equal(t, -75.015152, actual["PE"].Longitude, "iso2 should be upper cased")
}

func TestParseNoTable(t *testing.T) {
	_, err := centroid.Parse(strings.NewReader("<html><body><p>moved</p></body></html>"))
	assert.Equal(t, centroid.ErrNoTable, err)
}

func TestParseMissingColumn(t *testing.T) {
	_, err := centroid.Parse(strings.NewReader("<table><tr><th>country</th><th>name</th></tr></table>"))
	assert.Error(t, err)
}
