package source

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedscout/pkg/domain"
)

//go:generate moq -out mocks/notification_scheduler.go -pkg mocks -skip-ensure -fmt goimports . NotificationScheduler

// NotificationScheduler decides whether a news story warrants a push
// notification and records the decision. Implemented by pkg/notify.
type NotificationScheduler interface {
	ScheduleForStory(ctx context.Context, story *domain.NewsStory, preview *domain.ArticlePreview, force bool) (bool, error)
}

// FeedSource is the date-indexed source for the aggregate day feed
// (news stories, most read, featured article). It caches responses per
// date and, when notification scheduling is enabled, consults the
// scheduler for freshly fetched news stories of the current day.
type FeedSource struct {
	siteURL  string
	fetcher  Fetcher
	notifier NotificationScheduler
	now      func() time.Time

	schedulingEnabled atomic.Bool // read from coalesced fetch goroutines
	cache             *CachedSource
}

// SourceFunc adapts a plain function to the ContentSource interface
type SourceFunc func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error)

// FetchContent calls the wrapped function
func (f SourceFunc) FetchContent(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
	return f(ctx, date, force)
}

// NewFeed creates the aggregate feed source. The notifier may be nil,
// disabling notification scheduling entirely.
func NewFeed(siteURL string, fetcher Fetcher, notifier NotificationScheduler) *FeedSource {
	f := &FeedSource{
		siteURL:  siteURL,
		fetcher:  fetcher,
		notifier: notifier,
		now:      time.Now,
	}
	f.schedulingEnabled.Store(notifier != nil)
	f.cache = NewCached(SourceFunc(f.fetchDay))
	return f
}

// SetNotificationSchedulingEnabled toggles notification scheduling
func (f *FeedSource) SetNotificationSchedulingEnabled(enabled bool) {
	f.schedulingEnabled.Store(enabled)
}

// FetchContent returns the day response for the date, cached per date.
// Force bypasses and overwrites the cache entry.
func (f *FeedSource) FetchContent(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
	return f.cache.FetchContent(ctx, date, force)
}

// fetchDay performs the actual network fetch and parse for one date
func (f *FeedSource) fetchDay(ctx context.Context, date time.Time, _ bool) (*domain.FeedDayResponse, error) {
	body, err := f.fetcher.Fetch(ctx, feedAPIURL(f.siteURL, date))
	if err != nil {
		return nil, fmt.Errorf("fetch day feed: %w", err)
	}

	var payload feedDayPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse day feed: %w", err)
	}

	resp := payload.toResponse(date)
	lgr.Printf("[DEBUG] fetched day feed for %s: %d stories, %d most read",
		date.Format("2006-01-02"), len(resp.News), len(resp.MostRead))

	// freshly fetched stories for the current day are notification candidates
	if date.Equal(DateKey(f.now())) {
		f.scheduleForStories(ctx, resp.News)
	}
	return resp, nil
}

// ScheduleNotificationForNewsStory runs the scheduling decision for one
// story. Returns false without consulting the scheduler when scheduling
// is globally disabled.
func (f *FeedSource) ScheduleNotificationForNewsStory(ctx context.Context, story *domain.NewsStory, preview *domain.ArticlePreview, force bool) (bool, error) {
	if !f.schedulingEnabled.Load() || f.notifier == nil {
		return false, nil
	}
	return f.notifier.ScheduleForStory(ctx, story, preview, force)
}

// scheduleForStories offers fetched stories to the scheduler, stopping
// after the first accepted one
func (f *FeedSource) scheduleForStories(ctx context.Context, stories []domain.NewsStory) {
	for i := range stories {
		story := &stories[i]
		preview := story.RepresentativeArticle()
		if preview == nil {
			continue
		}
		ok, err := f.ScheduleNotificationForNewsStory(ctx, story, preview, false)
		if err != nil {
			lgr.Printf("[WARN] notification scheduling failed for %s: %v", preview.URL, err)
			continue
		}
		if ok {
			lgr.Printf("[INFO] scheduled in-the-news notification for %s", preview.URL)
			return
		}
	}
}
