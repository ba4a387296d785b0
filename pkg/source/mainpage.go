package source

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

// MainPageSource provides the site's main page summary
type MainPageSource struct {
	siteURL string
	title   string
	fetcher Fetcher
}

// NewMainPage creates the main-page source. Title is the main page
// article title, "Main_Page" when empty.
func NewMainPage(siteURL, title string, fetcher Fetcher) *MainPageSource {
	if title == "" {
		title = "Main_Page"
	}
	return &MainPageSource{siteURL: siteURL, title: title, fetcher: fetcher}
}

// FetchContent retrieves the main page summary
func (s *MainPageSource) FetchContent(ctx context.Context, date time.Time, _ bool) (*domain.FeedDayResponse, error) {
	body, err := s.fetcher.Fetch(ctx, s.siteURL+"/api/rest_v1/page/summary/"+s.title)
	if err != nil {
		return nil, fmt.Errorf("fetch main page: %w", err)
	}

	var payload pageSummary
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse main page: %w", err)
	}

	return &domain.FeedDayResponse{
		Date:     date,
		MainPage: &domain.FeaturedArticle{Article: payload.toPreview()},
	}, nil
}
