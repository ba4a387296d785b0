package source

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

//go:generate moq -out mocks/history_reader.go -pkg mocks -skip-ensure -fmt goimports . HistoryReader

// HistoryReader is the slice of the history store the continue-reading
// source needs
type HistoryReader interface {
	MostRecentEntry(ctx context.Context) (*domain.HistoryEntry, error)
}

// ContinueReadingSource surfaces the most recently visited page so the
// user can pick up where they left off. Backed by history, no network.
type ContinueReadingSource struct {
	history HistoryReader
	maxAge  time.Duration // entries older than this produce an empty section
}

// NewContinueReading creates the source. MaxAge defaults to 24h.
func NewContinueReading(history HistoryReader, maxAge time.Duration) *ContinueReadingSource {
	if maxAge == 0 {
		maxAge = 24 * time.Hour
	}
	return &ContinueReadingSource{history: history, maxAge: maxAge}
}

// FetchContent returns the most recent history entry as a single-item
// response, empty when none is recent enough
func (s *ContinueReadingSource) FetchContent(ctx context.Context, date time.Time, _ bool) (*domain.FeedDayResponse, error) {
	entry, err := s.history.MostRecentEntry(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.FeedDayResponse{Date: date}
	if entry == nil || time.Since(entry.Date) > s.maxAge {
		return resp, nil
	}

	resp.Random = &domain.ArticlePreview{ // single-entry slot, shared with the random section
		URL:       entry.URL,
		Title:     titleFromURL(entry.URL),
		Fragment:  entry.Fragment,
		Published: entry.Date,
	}
	return resp, nil
}

// titleFromURL derives a readable title from the article path
func titleFromURL(articleURL string) string {
	idx := strings.LastIndex(articleURL, "/")
	if idx < 0 || idx == len(articleURL)-1 {
		return articleURL
	}
	title, err := url.PathUnescape(articleURL[idx+1:])
	if err != nil {
		title = articleURL[idx+1:]
	}
	return strings.ReplaceAll(title, "_", " ")
}
