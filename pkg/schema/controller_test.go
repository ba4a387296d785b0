package schema

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscout/pkg/domain"
	"github.com/umputun/feedscout/pkg/source/mocks"
)

func testSection(t domain.SectionType) domain.Section {
	return domain.Section{ID: t.String(), Type: t, SortDate: time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)}
}

func TestController_FetchIfNeeded(t *testing.T) {
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			return &domain.FeedDayResponse{
				Date: date,
				News: []domain.NewsStory{{StoryHTML: "s", Articles: []domain.ArticlePreview{{URL: "https://en.wikipedia.org/wiki/Sun"}}}},
			}, nil
		},
	}
	c := NewController(testSection(domain.SectionNews), src, time.Hour)

	require.Equal(t, domain.StateIdle, c.State())
	require.NoError(t, c.FetchIfNeeded(context.Background()))

	assert.Equal(t, domain.StateLoaded, c.State())
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Sun", c.Items()[0].URL)
	assert.False(t, src.FetchContentCalls()[0].Force)

	// loaded and fresh, second call is a no-op
	require.NoError(t, c.FetchIfNeeded(context.Background()))
	assert.Len(t, src.FetchContentCalls(), 1)
}

func TestController_FetchIfNeeded_RefetchesStale(t *testing.T) {
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
	c := NewController(testSection(domain.SectionMostRead), src, time.Hour)

	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)
	c.now = func() time.Time { return now }

	require.NoError(t, c.FetchIfNeeded(context.Background()))
	require.Len(t, src.FetchContentCalls(), 1)

	// inside the freshness window, nothing happens
	now = now.Add(30 * time.Minute)
	require.NoError(t, c.FetchIfNeeded(context.Background()))
	assert.Len(t, src.FetchContentCalls(), 1)

	// past the window, the data is stale
	now = now.Add(45 * time.Minute)
	require.NoError(t, c.FetchIfNeeded(context.Background()))
	assert.Len(t, src.FetchContentCalls(), 2)
}

func TestController_ErrorState(t *testing.T) {
	failing := true
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			if failing {
				return nil, errors.New("upstream down")
			}
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
	c := NewController(testSection(domain.SectionRandom), src, time.Hour)

	err := c.FetchIfNeeded(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.StateError, c.State())
	assert.EqualError(t, c.LastError(), "upstream down")

	// error state is never retried automatically
	require.NoError(t, c.FetchIfNeeded(context.Background()))
	assert.Len(t, src.FetchContentCalls(), 1)

	// explicit retry clears the error
	failing = false
	require.NoError(t, c.FetchIfError(context.Background()))
	assert.Equal(t, domain.StateLoaded, c.State())
	assert.NoError(t, c.LastError())

	// FetchIfError outside the error state is a no-op
	require.NoError(t, c.FetchIfError(context.Background()))
	assert.Len(t, src.FetchContentCalls(), 2)
}

func TestController_FetchUserInitiated(t *testing.T) {
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
	c := NewController(testSection(domain.SectionMainPage), src, time.Hour)

	require.NoError(t, c.FetchIfNeeded(context.Background()))
	require.NoError(t, c.FetchUserInitiated(context.Background()))

	calls := src.FetchContentCalls()
	require.Len(t, calls, 2)
	assert.False(t, calls[0].Force)
	assert.True(t, calls[1].Force, "user initiated fetch bypasses caches")
}

func TestController_ConcurrentFetchAttaches(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			close(entered)
			<-release
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
	c := NewController(testSection(domain.SectionNews), src, time.Hour)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.FetchIfNeeded(context.Background()))
	}()
	<-entered
	require.Equal(t, domain.StateLoading, c.State())

	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.FetchIfNeeded(context.Background()))
	}()
	time.Sleep(20 * time.Millisecond) // let the second caller attach

	close(release)
	wg.Wait()

	assert.Len(t, src.FetchContentCalls(), 1, "attached caller issues no duplicate fetch")
	assert.Equal(t, domain.StateLoaded, c.State())
}

func TestController_AttachHonorsContext(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			close(entered)
			<-release
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
	c := NewController(testSection(domain.SectionNews), src, time.Hour)

	go func() { _ = c.FetchIfNeeded(context.Background()) }()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := c.FetchIfNeeded(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}

func TestController_RetireDiscardsInFlightResult(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			close(entered)
			<-release
			return &domain.FeedDayResponse{
				Date: date,
				News: []domain.NewsStory{{Articles: []domain.ArticlePreview{{URL: "https://en.wikipedia.org/wiki/Sun"}}}},
			}, nil
		},
	}
	c := NewController(testSection(domain.SectionNews), src, time.Hour)

	done := make(chan error, 1)
	go func() { done <- c.FetchIfNeeded(context.Background()) }()
	<-entered

	c.Retire()
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, domain.StateIdle, c.State(), "retired controller ignores the late completion")
	assert.Empty(t, c.Items())
}

func TestController_ResetData(t *testing.T) {
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			random := domain.ArticlePreview{URL: "https://en.wikipedia.org/wiki/Moon"}
			return &domain.FeedDayResponse{Date: date, Random: &random}, nil
		},
	}
	c := NewController(testSection(domain.SectionRandom), src, time.Hour)

	require.NoError(t, c.FetchIfNeeded(context.Background()))
	require.Len(t, c.Items(), 1)

	c.ResetData()
	assert.Equal(t, domain.StateIdle, c.State())
	assert.Empty(t, c.Items())

	// idle again, the next call fetches
	require.NoError(t, c.FetchIfNeeded(context.Background()))
	assert.Len(t, src.FetchContentCalls(), 2)
}

func TestController_IsEmpty(t *testing.T) {
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			return &domain.FeedDayResponse{Date: date}, nil // no items for any type
		},
	}
	c := NewController(testSection(domain.SectionNearby), src, time.Hour)

	assert.False(t, c.IsEmpty(), "idle is not empty, just unloaded")
	require.NoError(t, c.FetchIfNeeded(context.Background()))
	assert.True(t, c.IsEmpty())
}

func TestController_SectionSnapshotCarriesLastUpdated(t *testing.T) {
	src := &mocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
	c := NewController(testSection(domain.SectionNews), src, time.Hour)
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	c.now = func() time.Time { return fixed }

	assert.Nil(t, c.Section().LastUpdatedAt)
	require.NoError(t, c.FetchIfNeeded(context.Background()))

	sec := c.Section()
	require.NotNil(t, sec.LastUpdatedAt)
	assert.Equal(t, fixed, *sec.LastUpdatedAt)
}
