package source

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

// MostReadSource provides the trending most-read list for a date
type MostReadSource struct {
	siteURL string
	fetcher Fetcher
}

// NewMostRead creates the most-read source for a site
func NewMostRead(siteURL string, fetcher Fetcher) *MostReadSource {
	return &MostReadSource{siteURL: siteURL, fetcher: fetcher}
}

// FetchContent retrieves the most-read articles for the date
func (s *MostReadSource) FetchContent(ctx context.Context, date time.Time, _ bool) (*domain.FeedDayResponse, error) {
	body, err := s.fetcher.Fetch(ctx, feedAPIURL(s.siteURL, date))
	if err != nil {
		return nil, fmt.Errorf("fetch most read: %w", err)
	}

	var payload feedDayPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse most read: %w", err)
	}

	resp := &domain.FeedDayResponse{Date: date}
	for _, a := range payload.MostRead.Articles {
		preview := a.toPreview()
		preview.ViewCount = a.Views
		resp.MostRead = append(resp.MostRead, preview)
	}
	return resp, nil
}
