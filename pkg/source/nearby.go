package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

// NearbySource provides articles about places around the current
// location, obtained from the injected Locator
type NearbySource struct {
	siteURL string
	fetcher Fetcher
	locator Locator
	radius  int // meters
	limit   int
}

// NewNearby creates the nearby source. Radius defaults to 10km, limit to 24.
func NewNearby(siteURL string, fetcher Fetcher, locator Locator, radius, limit int) *NearbySource {
	if radius == 0 {
		radius = 10000
	}
	if limit == 0 {
		limit = 24
	}
	return &NearbySource{siteURL: siteURL, fetcher: fetcher, locator: locator, radius: radius, limit: limit}
}

// geoSearchPayload mirrors the geosearch action API response
type geoSearchPayload struct {
	Query struct {
		GeoSearch []struct {
			Title string  `json:"title"`
			Lat   float64 `json:"lat"`
			Lon   float64 `json:"lon"`
			Dist  float64 `json:"dist"`
		} `json:"geosearch"`
	} `json:"query"`
}

// FetchContent resolves the current location and retrieves nearby articles
func (s *NearbySource) FetchContent(ctx context.Context, date time.Time, _ bool) (*domain.FeedDayResponse, error) {
	lat, lon, err := s.locator.CurrentLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current location: %w", err)
	}

	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "geosearch")
	q.Set("gscoord", fmt.Sprintf("%f|%f", lat, lon))
	q.Set("gsradius", fmt.Sprintf("%d", s.radius))
	q.Set("gslimit", fmt.Sprintf("%d", s.limit))
	q.Set("format", "json")

	body, err := s.fetcher.Fetch(ctx, s.siteURL+"/w/api.php?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch nearby: %w", err)
	}

	var payload geoSearchPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse nearby: %w", err)
	}

	resp := &domain.FeedDayResponse{Date: date}
	for _, g := range payload.Query.GeoSearch {
		resp.Nearby = append(resp.Nearby, domain.ArticlePreview{
			URL:       s.articleURL(g.Title),
			Title:     g.Title,
			Latitude:  g.Lat,
			Longitude: g.Lon,
		})
	}
	return resp, nil
}

func (s *NearbySource) articleURL(title string) string {
	return s.siteURL + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}
