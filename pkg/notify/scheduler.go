// Package notify decides whether a news story may produce a push
// notification. It enforces the daily cap and the allowed local-hour
// window, deduplicates against history, and hands accepted requests to
// an external delivery collaborator. Rejection is a policy decision,
// not an error.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedscout/pkg/domain"
)

//go:generate moq -out mocks/clock.go -pkg mocks -skip-ensure -fmt goimports . Clock
//go:generate moq -out mocks/delivery.go -pkg mocks -skip-ensure -fmt goimports . Delivery
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// Clock supplies the current time, injected to keep window checks
// deterministic under test
type Clock interface {
	Now() time.Time
}

// Delivery receives accepted notification requests. Delivery mechanics
// are entirely outside this package.
type Delivery interface {
	Deliver(ctx context.Context, req domain.NotificationRequest) error
}

// History is the slice of the history store the scheduler needs for
// dedupe and for recording accepted notifications
type History interface {
	Entry(ctx context.Context, url string) (*domain.HistoryEntry, error)
	SetInTheNewsNotified(ctx context.Context, date time.Time, urls ...string) error
}

// Config holds scheduling limits. Hours are local wall-clock, the
// window is [MinHour, MaxHour).
type Config struct {
	MinHour   int // default 8
	MaxHour   int // default 20
	MaxPerDay int // default 3
}

// Scheduler makes the per-story scheduling decision
type Scheduler struct {
	history  History
	delivery Delivery
	clock    Clock
	cfg      Config

	mu       sync.Mutex
	countDay time.Time // local day the counter belongs to
	count    int
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewScheduler creates a scheduler. A nil clock means the system clock.
func NewScheduler(history History, delivery Delivery, clock Clock, cfg Config) *Scheduler {
	if cfg.MinHour == 0 && cfg.MaxHour == 0 {
		cfg.MinHour, cfg.MaxHour = 8, 20
	}
	if cfg.MaxPerDay == 0 {
		cfg.MaxPerDay = 3
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Scheduler{history: history, delivery: delivery, clock: clock, cfg: cfg}
}

// ScheduleForStory decides whether the story should produce a
// notification for its representative article. Returns true only when
// the request was accepted and handed to delivery. All checks run
// against the local wall clock at decision time.
func (s *Scheduler) ScheduleForStory(ctx context.Context, story *domain.NewsStory, preview *domain.ArticlePreview, force bool) (bool, error) {
	if preview == nil || preview.URL == "" {
		return false, nil
	}
	now := s.clock.Now()

	entry, err := s.history.Entry(ctx, preview.URL)
	if err != nil {
		return false, fmt.Errorf("check history for %s: %w", preview.URL, err)
	}
	alreadyNotified := entry != nil && entry.InTheNewsNotifiedAt != nil

	if !force {
		if alreadyNotified {
			lgr.Printf("[DEBUG] skipping notification for %s: already notified at %v", preview.URL, entry.InTheNewsNotifiedAt)
			return false, nil
		}
		if entry != nil && entry.SignificantlyViewed {
			lgr.Printf("[DEBUG] skipping notification for %s: significantly viewed", preview.URL)
			return false, nil
		}
	}

	if hour := now.Hour(); hour < s.cfg.MinHour || hour >= s.cfg.MaxHour {
		lgr.Printf("[DEBUG] skipping notification for %s: hour %d outside [%d,%d)", preview.URL, hour, s.cfg.MinHour, s.cfg.MaxHour)
		return false, nil
	}

	// reserve a slot against the cap before delivering, so concurrent
	// calls can't all pass the check and overshoot the daily maximum
	s.mu.Lock()
	day := localDay(now)
	if !day.Equal(s.countDay) {
		s.countDay, s.count = day, 0
	}
	if s.count >= s.cfg.MaxPerDay {
		s.mu.Unlock()
		lgr.Printf("[DEBUG] skipping notification for %s: daily cap of %d reached", preview.URL, s.cfg.MaxPerDay)
		return false, nil
	}
	if !alreadyNotified { // a forced re-run of a notified story doesn't count
		s.count++
	}
	s.mu.Unlock()

	req := domain.NotificationRequest{
		Title:       preview.Title,
		Body:        Teaser(story.StoryHTML),
		TargetURL:   preview.URL,
		ScheduledAt: now,
	}
	if err := s.delivery.Deliver(ctx, req); err != nil {
		s.mu.Lock()
		if !alreadyNotified && day.Equal(s.countDay) { // give the reserved slot back
			s.count--
		}
		s.mu.Unlock()
		return false, fmt.Errorf("deliver notification for %s: %w", preview.URL, err)
	}

	// record against every article the story references so a re-run of
	// the same story stays a no-op
	urls := make([]string, 0, len(story.Articles))
	for _, a := range story.Articles {
		if a.URL != "" {
			urls = append(urls, a.URL)
		}
	}
	if err := s.history.SetInTheNewsNotified(ctx, now, urls...); err != nil {
		lgr.Printf("[WARN] failed to record notification date: %v", err)
	}

	return true, nil
}

// localDay truncates a time to its local calendar day
func localDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
