package schema

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedscout/pkg/domain"
	"github.com/umputun/feedscout/pkg/source"
)

// Controller owns one section's items and fetch state machine. States
// move idle -> loading -> {loaded, error}; loaded and error re-enter
// loading on the next fetch. Loaded with zero items is the empty
// sub-state, rendered as placeholders and never re-fetched automatically.
//
// At most one fetch is in flight per controller. A caller arriving
// while a fetch runs attaches to its completion instead of issuing a
// duplicate request. A reset or retire while a fetch is in flight makes
// the eventual completion a discarded no-op.
type Controller struct {
	section   domain.Section
	src       source.ContentSource
	freshness time.Duration
	now       func() time.Time

	mu          sync.Mutex
	state       domain.SectionState
	items       []domain.ArticlePreview
	lastErr     error
	lastUpdated time.Time
	gen         int           // bumped on reset/retire, stale completions are dropped
	done        chan struct{} // closed when the in-flight fetch settles
}

// NewController creates a controller for a section descriptor
func NewController(section domain.Section, src source.ContentSource, freshness time.Duration) *Controller {
	if freshness == 0 {
		freshness = 30 * time.Minute
	}
	c := &Controller{section: section, src: src, freshness: freshness, now: time.Now}
	if section.LastUpdatedAt != nil {
		c.lastUpdated = *section.LastUpdatedAt
	}
	return c
}

// Section returns the current descriptor snapshot
func (c *Controller) Section() domain.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	sec := c.section
	if !c.lastUpdated.IsZero() {
		t := c.lastUpdated
		sec.LastUpdatedAt = &t
	}
	return sec
}

// State returns the current fetch state
func (c *Controller) State() domain.SectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns the section's current items
func (c *Controller) Items() []domain.ArticlePreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// LastError returns the retained cause of the last failed fetch
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// IsEmpty reports the empty sub-state, loaded with zero items
func (c *Controller) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == domain.StateLoaded && len(c.items) == 0
}

// FetchIfNeeded fetches when the controller is idle, or loaded with
// data older than the freshness window. Any other state is a no-op,
// except loading where the call attaches to the in-flight fetch.
func (c *Controller) FetchIfNeeded(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case domain.StateLoading:
		return c.attach(ctx) // unlocks
	case domain.StateIdle:
		return c.fetch(ctx, false) // unlocks
	case domain.StateLoaded:
		if c.now().Sub(c.lastUpdated) > c.freshness {
			return c.fetch(ctx, false) // unlocks
		}
	case domain.StateError:
		// errors are retried only explicitly, via FetchIfError
	}
	c.mu.Unlock()
	return nil
}

// FetchIfError retries exactly once when the controller is in the error
// state, a no-op otherwise
func (c *Controller) FetchIfError(ctx context.Context) error {
	c.mu.Lock()
	if c.state != domain.StateError {
		c.mu.Unlock()
		return nil
	}
	return c.fetch(ctx, false) // unlocks
}

// FetchUserInitiated always fetches, bypassing freshness and state
// checks. A concurrent in-flight fetch is attached to, not duplicated.
func (c *Controller) FetchUserInitiated(ctx context.Context) error {
	c.mu.Lock()
	if c.state == domain.StateLoading {
		return c.attach(ctx) // unlocks
	}
	return c.fetch(ctx, true) // unlocks
}

// ResetData clears items and returns to idle. An in-flight fetch keeps
// running but its completion is discarded.
func (c *Controller) ResetData() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retireLocked()
}

// Retire marks the controller as removed by the schema; same discard
// semantics as ResetData
func (c *Controller) Retire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retireLocked()
}

func (c *Controller) retireLocked() {
	c.gen++
	c.items = nil
	c.state = domain.StateIdle
	c.lastErr = nil
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

// attach waits for the in-flight fetch to settle and reports its
// outcome. Called with the lock held, returns with it released.
func (c *Controller) attach(ctx context.Context) error {
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return c.LastError()
}

// fetch transitions to loading and runs the source synchronously.
// Called with the lock held, returns with it released. A completion
// arriving after a reset or retire mutates nothing.
func (c *Controller) fetch(ctx context.Context, force bool) error {
	gen := c.gen
	c.state = domain.StateLoading
	c.lastErr = nil
	c.done = make(chan struct{})
	sectionType := c.section.Type
	c.mu.Unlock()

	resp, err := c.src.FetchContent(ctx, source.DateKey(c.now()), force)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		lgr.Printf("[DEBUG] discarding fetch result for retired section %s", c.section.ID)
		return nil
	}

	if c.done != nil {
		close(c.done)
		c.done = nil
	}

	if err != nil {
		c.state = domain.StateError
		c.lastErr = err
		lgr.Printf("[WARN] fetch failed for section %s: %v", c.section.ID, err)
		return err
	}

	c.state = domain.StateLoaded
	c.items = resp.Items(sectionType)
	c.lastUpdated = c.now()
	return nil
}
