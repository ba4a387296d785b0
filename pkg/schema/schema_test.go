package schema

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscout/pkg/domain"
	"github.com/umputun/feedscout/pkg/schema/mocks"
	"github.com/umputun/feedscout/pkg/source"
	sourcemocks "github.com/umputun/feedscout/pkg/source/mocks"
)

// memSettings is a SettingStoreMock backed by an in-memory map
func memSettings() *mocks.SettingStoreMock {
	var mu sync.Mutex
	data := map[string]string{}
	return &mocks.SettingStoreMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return data[key], nil
		},
		SetSettingFunc: func(ctx context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
	}
}

func emptyHistory() *mocks.HistoryProviderMock {
	return &mocks.HistoryProviderMock{
		CountFunc:                 func(ctx context.Context) (int, error) { return 0, nil },
		CountSignificantSinceFunc: func(ctx context.Context, since time.Time) (int, error) { return 0, nil },
		MostRecentEntryFunc:       func(ctx context.Context) (*domain.HistoryEntry, error) { return nil, nil },
	}
}

func richHistory(now time.Time, significant int) *mocks.HistoryProviderMock {
	return &mocks.HistoryProviderMock{
		CountFunc:                 func(ctx context.Context) (int, error) { return 12, nil },
		CountSignificantSinceFunc: func(ctx context.Context, since time.Time) (int, error) { return significant, nil },
		MostRecentEntryFunc: func(ctx context.Context) (*domain.HistoryEntry, error) {
			return &domain.HistoryEntry{URL: "https://en.wikipedia.org/wiki/Sun", Date: now.Add(-time.Hour)}, nil
		},
	}
}

// emptySource returns a ContentSourceMock serving an empty day response
func emptySource() *sourcemocks.ContentSourceMock {
	return &sourcemocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
}

func staticFactory(srcs map[domain.SectionType]source.ContentSource) SourceFactory {
	return func(siteURL string) map[domain.SectionType]source.ContentSource { return srcs }
}

func allSources() map[domain.SectionType]source.ContentSource {
	res := map[domain.SectionType]source.ContentSource{}
	for _, t := range []domain.SectionType{domain.SectionContinueReading, domain.SectionMostRead,
		domain.SectionNearby, domain.SectionRandom, domain.SectionMainPage, domain.SectionNews} {
		res[t] = emptySource()
	}
	return res
}

// delegateRecorder captures callback order and removal details
type delegateRecorder struct {
	mu      sync.Mutex
	events  []string
	removed []struct {
		section domain.Section
		index   int
	}
}

func (d *delegateRecorder) SchemaDidUpdateSections(_ *Schema) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, "updated")
}

func (d *delegateRecorder) DidRemoveSection(_ *Schema, sec domain.Section, index int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, "removed:"+sec.ID)
	d.removed = append(d.removed, struct {
		section domain.Section
		index   int
	}{sec, index})
}

func sectionIDs(sections []domain.Section) []string {
	ids := make([]string, len(sections))
	for i, sec := range sections {
		ids[i] = sec.ID
	}
	return ids
}

func TestLoad_DefaultsWhenNothingPersisted(t *testing.T) {
	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		memSettings(), staticFactory(allSources()), Config{})
	require.NoError(t, err)

	assert.Equal(t, []string{"most-read", "random", "main-page", "news"}, sectionIDs(s.Sections()))
	assert.Equal(t, "https://en.wikipedia.org", s.SiteURL())
}

func TestLoad_PersistedSections(t *testing.T) {
	stored := []domain.Section{
		{ID: "news", Type: domain.SectionNews, SortDate: time.Now()},
		{ID: "most-read", Type: domain.SectionMostRead, SortDate: time.Now()},
		{ID: "rss", Type: domain.SectionRSS, SortDate: time.Now()}, // no source configured, skipped
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	settings := memSettings()
	require.NoError(t, settings.SetSetting(context.Background(), "sections", string(data)))

	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		settings, staticFactory(allSources()), Config{})
	require.NoError(t, err)

	assert.Equal(t, []string{"news", "most-read"}, sectionIDs(s.Sections()),
		"persisted order kept until the next update pass")
}

func TestLoad_CorruptDocumentFallsBackToDefaults(t *testing.T) {
	settings := memSettings()
	require.NoError(t, settings.SetSetting(context.Background(), "sections", "{not json"))

	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		settings, staticFactory(allSources()), Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"most-read", "random", "main-page", "news"}, sectionIDs(s.Sections()))
}

func TestSchema_Update_EmptyHistory(t *testing.T) {
	settings := memSettings()
	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		settings, staticFactory(allSources()), Config{})
	require.NoError(t, err)

	rec := &delegateRecorder{}
	s.SetDelegate(rec)

	changed := s.Update(context.Background(), false)
	assert.False(t, changed, "defaults already match the rules for an empty history")
	assert.Equal(t, []string{"most-read", "random", "main-page", "news"}, sectionIDs(s.Sections()))
	assert.Equal(t, []string{"updated"}, rec.events)

	// the list document landed in settings
	raw, err := settings.GetSetting(context.Background(), "sections")
	require.NoError(t, err)
	var persisted []domain.Section
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, []string{"most-read", "random", "main-page", "news"}, sectionIDs(persisted))
}

func TestSchema_Update_RichHistoryAddsSections(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	s, err := Load(context.Background(), "https://en.wikipedia.org", richHistory(now, 5), nil,
		memSettings(), staticFactory(allSources()), Config{})
	require.NoError(t, err)
	s.now = func() time.Time { return now }

	changed := s.Update(context.Background(), false)
	assert.True(t, changed)
	assert.Equal(t, []string{"continue-reading", "most-read", "nearby", "random", "main-page", "news"},
		sectionIDs(s.Sections()), "type precedence order")
}

func TestSchema_Update_ContinueReadingNeedsEngagement(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	t.Run("too few significant views", func(t *testing.T) {
		s, err := Load(context.Background(), "https://en.wikipedia.org", richHistory(now, 2), nil,
			memSettings(), staticFactory(allSources()), Config{MinSignificant: 3})
		require.NoError(t, err)
		s.now = func() time.Time { return now }

		s.Update(context.Background(), false)
		assert.NotContains(t, sectionIDs(s.Sections()), "continue-reading")
		assert.Contains(t, sectionIDs(s.Sections()), "nearby", "history count alone admits nearby")
	})

	t.Run("last visit too old", func(t *testing.T) {
		history := richHistory(now, 5)
		history.MostRecentEntryFunc = func(ctx context.Context) (*domain.HistoryEntry, error) {
			return &domain.HistoryEntry{URL: "https://en.wikipedia.org/wiki/Sun", Date: now.Add(-48 * time.Hour)}, nil
		}
		s, err := Load(context.Background(), "https://en.wikipedia.org", history, nil,
			memSettings(), staticFactory(allSources()), Config{ContinueReadingAge: 24 * time.Hour})
		require.NoError(t, err)
		s.now = func() time.Time { return now }

		s.Update(context.Background(), false)
		assert.NotContains(t, sectionIDs(s.Sections()), "continue-reading")
	})
}

func TestSchema_Update_BlacklistRemoval(t *testing.T) {
	settings := memSettings()

	stored := []domain.Section{
		{ID: "most-read", Type: domain.SectionMostRead, SortDate: time.Now()},
		{ID: "random", Type: domain.SectionRandom, SortDate: time.Now()},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, settings.SetSetting(context.Background(), "sections", string(data)))
	require.NoError(t, settings.SetSetting(context.Background(), "sections-blacklist", `["random"]`))

	blacklist, err := LoadBlacklist(context.Background(), settings)
	require.NoError(t, err)

	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), blacklist,
		settings, staticFactory(allSources()), Config{})
	require.NoError(t, err)

	rec := &delegateRecorder{}
	s.SetDelegate(rec)

	changed := s.Update(context.Background(), false)
	assert.True(t, changed)
	assert.NotContains(t, sectionIDs(s.Sections()), "random")

	require.Len(t, rec.removed, 1)
	assert.Equal(t, "random", rec.removed[0].section.ID)
	assert.Equal(t, 1, rec.removed[0].index, "index valid at removal time")
	assert.Equal(t, "removed:random", rec.events[0], "removal precedes the sections-updated callback")
	assert.Equal(t, "updated", rec.events[len(rec.events)-1])
}

func TestSchema_Update_FetchesSections(t *testing.T) {
	srcs := allSources()
	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		memSettings(), staticFactory(srcs), Config{})
	require.NoError(t, err)

	s.Update(context.Background(), false)

	for _, typ := range []domain.SectionType{domain.SectionMostRead, domain.SectionRandom,
		domain.SectionMainPage, domain.SectionNews} {
		mock := srcs[typ].(*sourcemocks.ContentSourceMock)
		assert.Len(t, mock.FetchContentCalls(), 1, "section %s fetched once", typ)
		assert.False(t, mock.FetchContentCalls()[0].Force)
	}

	ctrl := s.Controller("news")
	require.NotNil(t, ctrl)
	assert.Equal(t, domain.StateLoaded, ctrl.State())
	assert.Nil(t, s.Controller("no-such-section"))
}

func TestSchema_Update_ForceBypassesFreshness(t *testing.T) {
	srcs := allSources()
	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		memSettings(), staticFactory(srcs), Config{})
	require.NoError(t, err)

	s.Update(context.Background(), false)
	s.Update(context.Background(), true)

	mock := srcs[domain.SectionNews].(*sourcemocks.ContentSourceMock)
	require.Len(t, mock.FetchContentCalls(), 2, "freshness skipped on forced update")
	assert.True(t, mock.FetchContentCalls()[1].Force)
}

func TestSchema_UpdateSiteURL(t *testing.T) {
	var factoryCalls []string
	factory := func(siteURL string) map[domain.SectionType]source.ContentSource {
		factoryCalls = append(factoryCalls, siteURL)
		return allSources()
	}

	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		memSettings(), factory, Config{})
	require.NoError(t, err)
	s.Update(context.Background(), false)

	s.UpdateSiteURL("https://de.wikipedia.org")
	assert.Equal(t, "https://de.wikipedia.org", s.SiteURL())
	assert.Empty(t, s.Sections(), "old sections retired on site switch")
	assert.Equal(t, []string{"https://en.wikipedia.org", "https://de.wikipedia.org"}, factoryCalls)

	// same URL again is a no-op
	s.UpdateSiteURL("https://de.wikipedia.org")
	assert.Len(t, factoryCalls, 2)

	// the next update rebuilds the list
	s.Update(context.Background(), false)
	assert.Equal(t, []string{"most-read", "random", "main-page", "news"}, sectionIDs(s.Sections()))
}

func TestSchema_Update_SurvivesPersistFailure(t *testing.T) {
	settings := memSettings()
	settings.SetSettingFunc = func(ctx context.Context, key, value string) error {
		return assert.AnError
	}

	s, err := Load(context.Background(), "https://en.wikipedia.org", emptyHistory(), nil,
		settings, staticFactory(allSources()), Config{})
	require.NoError(t, err)

	s.Update(context.Background(), false)
	assert.Equal(t, []string{"most-read", "random", "main-page", "news"}, sectionIDs(s.Sections()),
		"in-memory list kept when storage fails")
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(assert.AnError))
	assert.True(t, isLockError(errDatabaseLocked{}))
}

type errDatabaseLocked struct{}

func (errDatabaseLocked) Error() string { return "database is locked (5) (SQLITE_BUSY)" }
