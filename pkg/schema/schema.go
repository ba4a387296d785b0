// Package schema orchestrates the explore feed: it owns the ordered
// list of active sections, persists and reloads that list across runs,
// applies the business rules deciding which sections exist, drives
// per-section fetches, and drops sections the blacklist suppresses.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedscout/pkg/domain"
	"github.com/umputun/feedscout/pkg/source"
)

//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/history_provider.go -pkg mocks -skip-ensure -fmt goimports . HistoryProvider

const sectionsKey = "sections"

// SettingStore persists the serialized section list and the blacklist
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// HistoryProvider is the slice of the history store the business rules
// consult
type HistoryProvider interface {
	Count(ctx context.Context) (int, error)
	CountSignificantSince(ctx context.Context, since time.Time) (int, error)
	MostRecentEntry(ctx context.Context) (*domain.HistoryEntry, error)
}

// Delegate receives reconciliation callbacks. Within one update pass all
// removal callbacks fire before the single sections-updated callback,
// so a list-diffing consumer sees unambiguous indices.
type Delegate interface {
	SchemaDidUpdateSections(s *Schema)
	DidRemoveSection(s *Schema, section domain.Section, index int)
}

// SourceFactory builds the content sources for a site. Rebuilt whenever
// the site URL changes. A missing type means the section cannot exist.
type SourceFactory func(siteURL string) map[domain.SectionType]source.ContentSource

// Config holds the schema's business-rule constants, all injectable
type Config struct {
	MaxWorkers         int                                  // concurrent section fetches, default 4
	Freshness          map[domain.SectionType]time.Duration // per-type minimum refresh interval
	DefaultFreshness   time.Duration                        // fallback window, default 30m
	MinSignificant     int           // significantly-viewed entries required for history sections, default 3
	SignificantWindow  time.Duration // lookback for the rule above, default 30 days
	ContinueReadingAge time.Duration // how recent the last visit must be, default 24h
}

// Schema is the explore feed orchestrator. List mutation is serialized
// internally; delegate callbacks fire from inside an update pass and
// must not call back into the schema.
type Schema struct {
	cfg       Config
	history   HistoryProvider
	blacklist *Blacklist
	settings  SettingStore
	factory   SourceFactory
	delegate  Delegate
	now       func() time.Time

	mu          sync.Mutex // guards the fields below, one update pass at a time
	siteURL     string
	sources     map[domain.SectionType]source.ContentSource
	controllers []*Controller // ordered, the section list
	forceNext   bool
}

// Load reconstructs the persisted section list, synthesizing the
// default ordering when nothing is stored yet
func Load(ctx context.Context, siteURL string, history HistoryProvider, blacklist *Blacklist,
	settings SettingStore, factory SourceFactory, cfg Config) (*Schema, error) {

	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.DefaultFreshness == 0 {
		cfg.DefaultFreshness = 30 * time.Minute
	}
	if cfg.MinSignificant == 0 {
		cfg.MinSignificant = 3
	}
	if cfg.SignificantWindow == 0 {
		cfg.SignificantWindow = 30 * 24 * time.Hour
	}
	if cfg.ContinueReadingAge == 0 {
		cfg.ContinueReadingAge = 24 * time.Hour
	}

	s := &Schema{
		cfg:       cfg,
		siteURL:   siteURL,
		history:   history,
		blacklist: blacklist,
		settings:  settings,
		factory:   factory,
		now:       time.Now,
	}
	s.sources = factory(siteURL)

	sections, err := s.loadPersisted(ctx)
	if err != nil {
		// persistence failure is recoverable, proceed with defaults
		lgr.Printf("[WARN] failed to load persisted sections: %v", err)
	}
	if len(sections) == 0 {
		sections = s.defaultSections()
		lgr.Printf("[INFO] no persisted sections, synthesized %d defaults", len(sections))
	}

	for _, sec := range sections {
		if src, ok := s.sources[sec.Type]; ok {
			s.controllers = append(s.controllers, NewController(sec, src, s.freshnessFor(sec.Type)))
		}
	}
	return s, nil
}

// Sections returns the ordered descriptor snapshots
func (s *Schema) Sections() []domain.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sectionsLocked()
}

func (s *Schema) sectionsLocked() []domain.Section {
	res := make([]domain.Section, len(s.controllers))
	for i, c := range s.controllers {
		res[i] = c.Section()
	}
	return res
}

// Controller returns the controller for a section ID, nil when absent
func (s *Schema) Controller(id string) *Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.controllers {
		if c.Section().ID == id {
			return c
		}
	}
	return nil
}

// SetDelegate installs the reconciliation callback receiver
func (s *Schema) SetDelegate(d Delegate) {
	s.delegate = d
}

// SiteURL returns the active content domain
func (s *Schema) SiteURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.siteURL
}

// UpdateSiteURL swaps the active content domain and forces a full
// re-evaluation on the next update
func (s *Schema) UpdateSiteURL(siteURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if siteURL == s.siteURL {
		return
	}
	lgr.Printf("[INFO] switching site url from %s to %s", s.siteURL, siteURL)
	s.siteURL = siteURL
	s.sources = s.factory(siteURL)
	for _, c := range s.controllers {
		c.Retire()
	}
	s.controllers = nil
	s.forceNext = true
}

// Update reconciles the section list against the business rules and
// triggers fetches, reporting whether the list changed. Must be called
// from a single coordinating goroutine; fetches themselves fan out to
// workers. Removal callbacks precede the sections-updated callback.
func (s *Schema) Update(ctx context.Context, force bool) bool {
	s.mu.Lock()
	if s.forceNext {
		force, s.forceNext = true, false
	}

	desired := s.desiredSections(ctx)
	changed := s.reconcile(desired)
	controllers := make([]*Controller, len(s.controllers))
	copy(controllers, s.controllers)
	s.mu.Unlock()

	// fetches run without the list lock, completions land in their
	// controllers; a section retired meanwhile discards its result
	s.fetchAll(ctx, controllers, force)
	s.persist(ctx)

	if s.delegate != nil {
		s.delegate.SchemaDidUpdateSections(s)
	}
	return changed
}

// desiredSections evaluates the business rules and returns the sections
// that should exist, in precedence order
func (s *Schema) desiredSections(ctx context.Context) []domain.Section {
	var res []domain.Section
	add := func(t domain.SectionType) {
		id := t.String()
		if s.blacklist != nil && s.blacklist.Contains(id) {
			return
		}
		if _, ok := s.sources[t]; !ok {
			return
		}
		res = append(res, domain.Section{ID: id, Type: t, SortDate: s.now()})
	}

	historyCount, err := s.history.Count(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to count history: %v", err)
	}

	// continue-reading needs a recent enough last visit and evidence of
	// real engagement (significantly viewed entries in the window)
	if s.continueReadingEligible(ctx) {
		add(domain.SectionContinueReading)
	}

	add(domain.SectionMostRead)

	// nearby needs the location capability and a non-empty history
	if historyCount > 0 {
		add(domain.SectionNearby)
	}

	add(domain.SectionRandom)
	add(domain.SectionMainPage)
	add(domain.SectionNews)
	add(domain.SectionRSS) // present only when an RSS feed is configured
	return res
}

func (s *Schema) continueReadingEligible(ctx context.Context) bool {
	entry, err := s.history.MostRecentEntry(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to get most recent history entry: %v", err)
		return false
	}
	if entry == nil || s.now().Sub(entry.Date) > s.cfg.ContinueReadingAge {
		return false
	}

	significant, err := s.history.CountSignificantSince(ctx, s.now().Add(-s.cfg.SignificantWindow))
	if err != nil {
		lgr.Printf("[WARN] failed to count significant history: %v", err)
		return false
	}
	return significant >= s.cfg.MinSignificant
}

// reconcile applies the desired set to the current list: removals fire
// the delegate callback one by one with the index valid at removal
// time, then insertions land and the list is re-sorted
func (s *Schema) reconcile(desired []domain.Section) bool {
	wanted := make(map[string]domain.Section, len(desired))
	for _, sec := range desired {
		wanted[sec.ID] = sec
	}

	before := s.sectionIDs()

	// removals first, so delegate indices stay unambiguous
	for i := 0; i < len(s.controllers); {
		sec := s.controllers[i].Section()
		if _, ok := wanted[sec.ID]; ok {
			i++
			continue
		}
		lgr.Printf("[INFO] removing section %s at index %d", sec.ID, i)
		s.controllers[i].Retire()
		s.controllers = append(s.controllers[:i], s.controllers[i+1:]...)
		if s.delegate != nil {
			s.delegate.DidRemoveSection(s, sec, i)
		}
	}

	// insertions
	existing := make(map[string]struct{}, len(s.controllers))
	for _, c := range s.controllers {
		existing[c.Section().ID] = struct{}{}
	}
	for _, sec := range desired {
		if _, ok := existing[sec.ID]; ok {
			continue
		}
		lgr.Printf("[INFO] adding section %s", sec.ID)
		s.controllers = append(s.controllers,
			NewController(sec, s.sources[sec.Type], s.freshnessFor(sec.Type)))
	}

	// fixed type precedence, then most recent update first
	sort.SliceStable(s.controllers, func(i, j int) bool {
		si, sj := s.controllers[i].Section(), s.controllers[j].Section()
		if si.Type != sj.Type {
			return si.Type < sj.Type
		}
		return si.SortDate.After(sj.SortDate)
	})

	after := s.sectionIDs()
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if before[i] != after[i] {
			return true
		}
	}
	return false
}

func (s *Schema) sectionIDs() []string {
	ids := make([]string, len(s.controllers))
	for i, c := range s.controllers {
		ids[i] = c.Section().ID
	}
	return ids
}

// fetchAll fans section fetches out to workers and waits for them. Each
// completion lands in its own controller, matched by identity.
func (s *Schema) fetchAll(ctx context.Context, controllers []*Controller, force bool) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxWorkers)

	for _, c := range controllers {
		g.Go(func() error {
			var err error
			if force {
				err = c.FetchUserInitiated(gctx)
			} else {
				err = c.FetchIfNeeded(gctx)
			}
			if err != nil {
				// fetch failures stay on the controller as error state
				lgr.Printf("[DEBUG] section %s fetch: %v", c.Section().ID, err)
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never return errors
}

// persist writes the section list document, logging and carrying on
// with in-memory state when storage fails
func (s *Schema) persist(ctx context.Context) {
	data, err := json.Marshal(s.Sections())
	if err != nil {
		lgr.Printf("[ERROR] failed to marshal sections: %v", err)
		return
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		if err := s.settings.SetSetting(ctx, sectionsKey, string(data)); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	})
	if err != nil {
		lgr.Printf("[WARN] failed to persist sections, keeping in-memory state: %v", err)
	}
}

func (s *Schema) loadPersisted(ctx context.Context) ([]domain.Section, error) {
	raw, err := s.settings.GetSetting(ctx, sectionsKey)
	if err != nil {
		return nil, fmt.Errorf("read sections document: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var sections []domain.Section
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, fmt.Errorf("parse sections document: %w", err)
	}

	// blacklisted identifiers are dropped on the next update pass, not
	// here, so the delegate observes the removal
	return sections, nil
}

// defaultSections is the initial ordering before any rules ran
func (s *Schema) defaultSections() []domain.Section {
	var res []domain.Section
	for _, t := range []domain.SectionType{domain.SectionMostRead, domain.SectionRandom,
		domain.SectionMainPage, domain.SectionNews} {
		if _, ok := s.sources[t]; ok {
			res = append(res, domain.Section{ID: t.String(), Type: t, SortDate: s.now()})
		}
	}
	return res
}

func (s *Schema) freshnessFor(t domain.SectionType) time.Duration {
	if d, ok := s.cfg.Freshness[t]; ok {
		return d
	}
	return s.cfg.DefaultFreshness
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
