package source

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

// RandomSource provides a random article pick. Not date-indexed, every
// non-cached fetch returns a new pick.
type RandomSource struct {
	siteURL string
	fetcher Fetcher
}

// NewRandom creates the random-pick source for a site
func NewRandom(siteURL string, fetcher Fetcher) *RandomSource {
	return &RandomSource{siteURL: siteURL, fetcher: fetcher}
}

// FetchContent retrieves one random article summary
func (s *RandomSource) FetchContent(ctx context.Context, date time.Time, _ bool) (*domain.FeedDayResponse, error) {
	body, err := s.fetcher.Fetch(ctx, s.siteURL+"/api/rest_v1/page/random/summary")
	if err != nil {
		return nil, fmt.Errorf("fetch random: %w", err)
	}

	var payload pageSummary
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse random: %w", err)
	}

	preview := payload.toPreview()
	return &domain.FeedDayResponse{Date: date, Random: &preview}, nil
}
