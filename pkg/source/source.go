// Package source provides the content providers backing explore feed
// sections. Every provider implements ContentSource: fetch the content
// for a calendar date, return parsed items or fail. Transport and
// location are injected capabilities, never implemented here.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/locator.go -pkg mocks -skip-ensure -fmt goimports . Locator
//go:generate moq -out mocks/content_source.go -pkg mocks -skip-ensure -fmt goimports . ContentSource

// ContentSource fetches the content for one calendar date. The date is
// normalized to local midnight by callers; implementations that are not
// date-indexed ignore it. Without force an implementation may serve a
// cached response for the date; force always refreshes.
type ContentSource interface {
	FetchContent(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error)
}

// Fetcher is the injected network capability, returns raw response bytes
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Locator is the injected location capability used by the nearby source
type Locator interface {
	CurrentLocation(ctx context.Context) (lat, lon float64, err error)
}

// DateKey normalizes a time to its local calendar day, the cache key
// granularity for date-indexed sources
func DateKey(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// feedAPIURL builds the dated aggregate feed endpoint for a site
func feedAPIURL(siteURL string, date time.Time) string {
	return fmt.Sprintf("%s/api/rest_v1/feed/featured/%04d/%02d/%02d",
		siteURL, date.Year(), int(date.Month()), date.Day())
}
