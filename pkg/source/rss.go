package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedscout/pkg/domain"
)

// RSSSource provides headline sections backed by an RSS/Atom feed.
// Not date-indexed, the feed's own publication dates carry through.
type RSSSource struct {
	feedURL string
	fetcher Fetcher
	parser  *gofeed.Parser
	limit   int
}

// NewRSS creates an RSS-backed source. Limit caps the number of stories,
// 20 when zero.
func NewRSS(feedURL string, fetcher Fetcher, limit int) *RSSSource {
	if limit == 0 {
		limit = 20
	}
	return &RSSSource{feedURL: feedURL, fetcher: fetcher, parser: gofeed.NewParser(), limit: limit}
}

// FetchContent retrieves and parses the feed, mapping each item to a
// single-article news story
func (s *RSSSource) FetchContent(ctx context.Context, date time.Time, _ bool) (*domain.FeedDayResponse, error) {
	body, err := s.fetcher.Fetch(ctx, s.feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch rss %s: %w", s.feedURL, err)
	}

	feed, err := s.parser.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse rss %s: %w", s.feedURL, err)
	}

	resp := &domain.FeedDayResponse{Date: date}
	for i, item := range feed.Items {
		if i >= s.limit {
			break
		}
		preview := domain.ArticlePreview{
			URL:     item.Link,
			Title:   item.Title,
			Extract: item.Description,
		}
		if item.PublishedParsed != nil {
			preview.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			preview.Published = *item.UpdatedParsed
		}
		resp.News = append(resp.News, domain.NewsStory{
			StoryHTML: item.Description,
			Articles:  []domain.ArticlePreview{preview},
		})
	}
	return resp, nil
}
