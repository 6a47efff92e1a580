package centroid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/bitmark-inc/covid-map/consts"
	"github.com/bitmark-inc/covid-map/schema"
)

const (
	logPrefix = "centroid"
)

var (
	ErrNoTable      = fmt.Errorf("no centroid table found")
	ErrMissingField = fmt.Errorf("centroid table misses a column")
)

// Centroids - country centroids keyed by ISO2 code
type Centroids map[string]schema.Centroid

// Centroid - interface to fetch country centroids
type Centroid interface {
	Fetch(ctx context.Context) (Centroids, error)
}

type centroid struct {
	client *http.Client
	url    string
}

func (c centroid) Fetch(ctx context.Context) (Centroids, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req.WithContext(ctx))
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": c.url, "error": err}).Error("get country centroids")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("central coordinates data for countries unavailable: http status %d", resp.StatusCode)
	}

	result, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "count": len(result)}).Debug("country centroids")

	return result, nil
}

// Parse reads the first table of the page. The header row names the
// columns; country, latitude and longitude are required.
func Parse(r io.Reader) (Centroids, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, ErrNoTable
	}

	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, strings.TrimSpace(text(c)))
				}
			}
			rows = append(rows, cells)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)

	if len(rows) == 0 {
		return nil, ErrNoTable
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(h)] = i
	}
	for _, name := range []string{"country", "latitude", "longitude"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	result := Centroids{}
	for _, row := range rows[1:] {
		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		iso2 := strings.ToUpper(get("country"))
		lat, errLat := strconv.ParseFloat(get("latitude"), 64)
		lng, errLng := strconv.ParseFloat(get("longitude"), 64)
		if iso2 == "" || errLat != nil || errLng != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "row": row}).Debug("skip incomplete centroid row")
			continue
		}

		result[iso2] = schema.Centroid{
			ISO2:      iso2,
			Latitude:  lat,
			Longitude: lng,
			Name:      get("name"),
		}
	}

	return result, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(text(c))
	}
	return sb.String()
}

// New - new centroid table client
func New(client *http.Client, url string) Centroid {
	u := consts.CountryCentroidsURL
	if url != "" {
		u = url
	}

	return &centroid{
		client: client,
		url:    u,
	}
}
