package source

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/umputun/feedscout/pkg/domain"
)

// CachedSource decorates a ContentSource with a date-indexed response
// cache. A cache hit completes synchronously with the identical response
// object; concurrent fetches for the same date coalesce into a single
// underlying call, forced or not.
type CachedSource struct {
	src ContentSource

	mu    sync.RWMutex
	cache map[time.Time]*domain.FeedDayResponse
	group singleflight.Group
}

// NewCached wraps a source with the per-date cache
func NewCached(src ContentSource) *CachedSource {
	return &CachedSource{src: src, cache: make(map[time.Time]*domain.FeedDayResponse)}
}

// FetchContent serves the cached response for the date when present and
// not forced. Forced fetches refresh and overwrite the cache entry.
func (c *CachedSource) FetchContent(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
	key := DateKey(date)

	if !force {
		c.mu.RLock()
		cached, ok := c.cache[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	// a second fetch for a date already in flight attaches to it
	// instead of issuing a duplicate request
	res, err, _ := c.group.Do(key.Format("2006-01-02"), func() (interface{}, error) {
		resp, err := c.src.FetchContent(ctx, key, force)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[key] = resp
		c.mu.Unlock()
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.FeedDayResponse), nil
}

// Invalidate drops the cache entry for a date
func (c *CachedSource) Invalidate(date time.Time) {
	c.mu.Lock()
	delete(c.cache, DateKey(date))
	c.mu.Unlock()
}
