// Package history keeps the durable log of visited pages. Entries are
// keyed by normalized URL with at most one entry per article; revisiting
// a page bumps its date instead of creating a duplicate.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/feedscout/pkg/db"
	"github.com/umputun/feedscout/pkg/domain"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage

// Storage is the persistence contract the store needs from the database
type Storage interface {
	UpsertHistory(ctx context.Context, rec *db.HistoryRecord) error
	GetHistory(ctx context.Context, url string) (*db.HistoryRecord, error)
	UpdateHistoryScroll(ctx context.Context, url, fragment string, position float64) (bool, error)
	MarkHistorySignificant(ctx context.Context, url string) (bool, error)
	SetHistoryNotified(ctx context.Context, date time.Time, urls ...string) error
	DeleteHistory(ctx context.Context, url string) error
	DeleteAllHistory(ctx context.Context) error
	MostRecentHistory(ctx context.Context) (*db.HistoryRecord, error)
	CountHistory(ctx context.Context) (int, error)
	CountSignificantHistorySince(ctx context.Context, since time.Time) (int, error)
	ListHistory(ctx context.Context, limit, offset int) ([]db.HistoryRecord, error)
}

// Config holds store options
type Config struct {
	// CreateMissing makes SetFragmentAndScrollPosition and
	// SetSignificantlyViewed create an entry when the URL is unknown
	// instead of treating the call as a no-op.
	CreateMissing bool
	// PageSize is the batch size used by Enumerate, default 100
	PageSize int
}

// Store is the history store. All mutations go through one mutex so the
// notification path and the user-facing add/remove path can run
// concurrently against the same database.
type Store struct {
	storage Storage
	cfg     Config
	now     func() time.Time

	mu sync.Mutex // serialize writes
}

// NewStore creates a history store on top of the given storage
func NewStore(storage Storage, cfg Config) *Store {
	if cfg.PageSize == 0 {
		cfg.PageSize = 100
	}
	return &Store{storage: storage, cfg: cfg, now: time.Now}
}

// AddPage upserts a visit record for the URL, updating the date on an
// existing entry rather than duplicating it
func (s *Store) AddPage(ctx context.Context, pageURL string) error {
	key, err := NormalizeURL(pageURL)
	if err != nil {
		return fmt.Errorf("add page: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &db.HistoryRecord{URL: key, DisplayURL: pageURL, Date: s.now()}
	if err := s.retryWrite(ctx, func() error { return s.storage.UpsertHistory(ctx, rec) }); err != nil {
		return fmt.Errorf("add page %s: %w", key, err)
	}
	return nil
}

// AddPages upserts visit records for multiple URLs. Invalid URLs are
// skipped with a warning, the rest are still recorded.
func (s *Store) AddPages(ctx context.Context, urls ...string) error {
	var errs []string
	for _, u := range urls {
		if err := s.AddPage(ctx, u); err != nil {
			lgr.Printf("[WARN] failed to add page %s: %v", u, err)
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("add pages: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SetFragmentAndScrollPosition saves the reading position for a page.
// With CreateMissing disabled (the default) unknown URLs are a no-op.
func (s *Store) SetFragmentAndScrollPosition(ctx context.Context, pageURL, fragment string, position float64) error {
	key, err := NormalizeURL(pageURL)
	if err != nil {
		return fmt.Errorf("set scroll position: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.storage.UpdateHistoryScroll(ctx, key, fragment, position)
	if err != nil {
		return fmt.Errorf("set scroll position for %s: %w", key, err)
	}
	if updated || !s.cfg.CreateMissing {
		return nil
	}

	rec := &db.HistoryRecord{URL: key, DisplayURL: pageURL, Fragment: fragment, ScrollPosition: position, Date: s.now()}
	if err := s.retryWrite(ctx, func() error { return s.storage.UpsertHistory(ctx, rec) }); err != nil {
		return fmt.Errorf("create entry for %s: %w", key, err)
	}
	// the upsert above doesn't touch fragment on conflict, set it explicitly
	if _, err := s.storage.UpdateHistoryScroll(ctx, key, fragment, position); err != nil {
		return fmt.Errorf("set scroll position for %s: %w", key, err)
	}
	return nil
}

// SetSignificantlyViewed flags a page as having held user attention.
// Idempotent, a second call on the same page changes nothing. Unknown
// URLs are a no-op unless CreateMissing is set.
func (s *Store) SetSignificantlyViewed(ctx context.Context, pageURL string) error {
	key, err := NormalizeURL(pageURL)
	if err != nil {
		return fmt.Errorf("set significantly viewed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.storage.MarkHistorySignificant(ctx, key)
	if err != nil {
		return fmt.Errorf("set significantly viewed for %s: %w", key, err)
	}
	if updated || !s.cfg.CreateMissing {
		return nil
	}

	if _, err := s.storage.GetHistory(ctx, key); err == nil {
		return nil // entry exists and is already significant
	} else if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("check entry for %s: %w", key, err)
	}

	rec := &db.HistoryRecord{URL: key, DisplayURL: pageURL, Date: s.now(), SignificantlyViewed: true}
	if err := s.retryWrite(ctx, func() error { return s.storage.UpsertHistory(ctx, rec) }); err != nil {
		return fmt.Errorf("create entry for %s: %w", key, err)
	}
	return nil
}

// SetInTheNewsNotified records the notification date for the given
// articles, used to avoid notifying twice about the same story
func (s *Store) SetInTheNewsNotified(ctx context.Context, date time.Time, urls ...string) error {
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		key, err := NormalizeURL(u)
		if err != nil {
			lgr.Printf("[WARN] skipping invalid url %s: %v", u, err)
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.retryWrite(ctx, func() error { return s.storage.SetHistoryNotified(ctx, date, keys...) }); err != nil {
		return fmt.Errorf("set in-the-news notified: %w", err)
	}
	return nil
}

// RemoveEntry deletes a single entry, no error if it never existed
func (s *Store) RemoveEntry(ctx context.Context, pageURL string) error {
	key, err := NormalizeURL(pageURL)
	if err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.DeleteHistory(ctx, key)
}

// RemoveAll deletes every entry
func (s *Store) RemoveAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.DeleteAllHistory(ctx)
}

// Entry returns the entry for a URL, nil if not present
func (s *Store) Entry(ctx context.Context, pageURL string) (*domain.HistoryEntry, error) {
	key, err := NormalizeURL(pageURL)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	rec, err := s.storage.GetHistory(ctx, key)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// MostRecentEntry returns the latest entry by date, nil if none
func (s *Store) MostRecentEntry(ctx context.Context) (*domain.HistoryEntry, error) {
	rec, err := s.storage.MostRecentHistory(ctx)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// Count returns the number of entries
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.storage.CountHistory(ctx)
}

// CountSignificantSince counts significantly viewed entries with dates
// at or after the given time
func (s *Store) CountSignificantSince(ctx context.Context, since time.Time) (int, error) {
	return s.storage.CountSignificantHistorySince(ctx, since)
}

// List returns a page of entries ordered by date descending
func (s *Store) List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
	recs, err := s.storage.ListHistory(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.HistoryEntry, len(recs))
	for i := range recs {
		entries[i] = *toDomain(&recs[i])
	}
	return entries, nil
}

// Enumerate traverses entries lazily in pages, calling fn for each one.
// Returning false from fn stops the traversal early.
func (s *Store) Enumerate(ctx context.Context, fn func(entry domain.HistoryEntry) bool) error {
	for offset := 0; ; offset += s.cfg.PageSize {
		recs, err := s.storage.ListHistory(ctx, s.cfg.PageSize, offset)
		if err != nil {
			return fmt.Errorf("enumerate history: %w", err)
		}
		for i := range recs {
			if !fn(*toDomain(&recs[i])) {
				return nil
			}
		}
		if len(recs) < s.cfg.PageSize {
			return nil
		}
	}
}

// retryWrite retries transient sqlite write failures with backoff
func (s *Store) retryWrite(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	})
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

func toDomain(rec *db.HistoryRecord) *domain.HistoryEntry {
	entry := &domain.HistoryEntry{
		URL:                 rec.URL,
		DisplayURL:          rec.DisplayURL,
		Fragment:            rec.Fragment,
		ScrollPosition:      rec.ScrollPosition,
		Date:                rec.Date,
		SignificantlyViewed: rec.SignificantlyViewed,
	}
	if rec.InTheNewsNotifiedAt.Valid {
		t := rec.InTheNewsNotifiedAt.Time
		entry.InTheNewsNotifiedAt = &t
	}
	return entry
}
