package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscout/pkg/domain"
	"github.com/umputun/feedscout/pkg/schema"
	sourcemocks "github.com/umputun/feedscout/pkg/source/mocks"
	"github.com/umputun/feedscout/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 5 * time.Second },
	}
}

// loadedController returns a controller already in the loaded state with
// the given news items
func loadedController(t *testing.T, id string, items ...domain.ArticlePreview) *schema.Controller {
	t.Helper()
	src := &sourcemocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			stories := make([]domain.NewsStory, len(items))
			for i, item := range items {
				stories[i] = domain.NewsStory{Articles: []domain.ArticlePreview{item}}
			}
			return &domain.FeedDayResponse{Date: date, News: stories}, nil
		},
	}
	c := schema.NewController(domain.Section{ID: id, Type: domain.SectionNews, SortDate: time.Now()}, src, time.Hour)
	require.NoError(t, c.FetchIfNeeded(context.Background()))
	return c
}

func TestServer_Status(t *testing.T) {
	srv := New(testConfig(), &mocks.FeedMock{}, &mocks.HistoryMock{}, &mocks.BlacklistMock{}, "v1.2.3", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "v1.2.3", status["version"])
}

func TestServer_Sections(t *testing.T) {
	ctrl := loadedController(t, "news", domain.ArticlePreview{URL: "https://en.wikipedia.org/wiki/Sun", Title: "Sun"})
	feed := &mocks.FeedMock{
		SectionsFunc: func() []domain.Section {
			return []domain.Section{{ID: "news", Type: domain.SectionNews, SortDate: time.Now()}}
		},
		ControllerFunc: func(id string) *schema.Controller {
			if id == "news" {
				return ctrl
			}
			return nil
		},
	}

	srv := New(testConfig(), feed, &mocks.HistoryMock{}, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("list without items", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/sections")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var sections []sectionInfo
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sections))
		require.Len(t, sections, 1)
		assert.Equal(t, "news", sections[0].ID)
		assert.Equal(t, "loaded", sections[0].State)
		assert.Equal(t, 1, sections[0].ItemCount)
		assert.Empty(t, sections[0].Items, "items only on the single-section endpoint")
	})

	t.Run("single with items", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/sections/news")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var sec sectionInfo
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sec))
		require.Len(t, sec.Items, 1)
		assert.Equal(t, "Sun", sec.Items[0].Title)
	})

	t.Run("unknown section", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/sections/nope")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_SectionItemsSanitized(t *testing.T) {
	ctrl := loadedController(t, "news", domain.ArticlePreview{
		URL:     "https://en.wikipedia.org/wiki/Sun",
		Title:   "Sun",
		Extract: `<b>bold</b><script>alert(1)</script>`,
	})
	feed := &mocks.FeedMock{
		ControllerFunc: func(id string) *schema.Controller { return ctrl },
	}

	srv := New(testConfig(), feed, &mocks.HistoryMock{}, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/sections/news")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var sec sectionInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sec))
	require.Len(t, sec.Items, 1)
	assert.Equal(t, "<b>bold</b>", sec.Items[0].Extract, "script tag stripped")
}

func TestServer_SectionRetry(t *testing.T) {
	failing := true
	src := &sourcemocks.ContentSourceMock{
		FetchContentFunc: func(ctx context.Context, date time.Time, force bool) (*domain.FeedDayResponse, error) {
			if failing {
				return nil, errors.New("upstream down")
			}
			return &domain.FeedDayResponse{Date: date}, nil
		},
	}
	ctrl := schema.NewController(domain.Section{ID: "news", Type: domain.SectionNews, SortDate: time.Now()}, src, time.Hour)
	_ = ctrl.FetchIfNeeded(context.Background()) // drive into the error state
	require.Equal(t, domain.StateError, ctrl.State())

	feed := &mocks.FeedMock{
		ControllerFunc: func(id string) *schema.Controller { return ctrl },
	}
	srv := New(testConfig(), feed, &mocks.HistoryMock{}, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("retry still failing", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/sections/news/retry", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("retry recovers", func(t *testing.T) {
		failing = false
		resp, err := http.Post(ts.URL+"/api/v1/sections/news/retry", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var sec sectionInfo
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sec))
		assert.Equal(t, "loaded", sec.State)
	})
}

func TestServer_Refresh(t *testing.T) {
	feed := &mocks.FeedMock{
		UpdateFunc: func(ctx context.Context, force bool) bool { return true },
	}
	srv := New(testConfig(), feed, &mocks.HistoryMock{}, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/refresh", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["changed"])

	calls := feed.UpdateCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Force)
}

func TestServer_Blacklist(t *testing.T) {
	ids := []string{}
	blacklist := &mocks.BlacklistMock{
		AllFunc: func() []string { return ids },
		AddFunc: func(ctx context.Context, id string) error {
			ids = append(ids, id)
			return nil
		},
		RemoveFunc: func(ctx context.Context, id string) error {
			ids = []string{}
			return nil
		},
	}
	srv := New(testConfig(), &mocks.FeedMock{}, &mocks.HistoryMock{}, blacklist, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("add", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/blacklist/news", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got []string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, []string{"news"}, got)
	})

	t.Run("list", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/blacklist")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		var got []string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, []string{"news"}, got)
	})

	t.Run("remove", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/blacklist/news", http.NoBody)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got []string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Empty(t, got)
	})
}

func TestServer_HistoryList(t *testing.T) {
	history := &mocks.HistoryMock{
		ListFunc: func(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
			return []domain.HistoryEntry{{URL: "https://en.wikipedia.org/wiki/Sun", Date: time.Now()}}, nil
		},
	}
	srv := New(testConfig(), &mocks.FeedMock{}, history, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("defaults", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/history")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		calls := history.ListCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 50, calls[0].Limit)
		assert.Equal(t, 0, calls[0].Offset)
	})

	t.Run("explicit paging", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/history?limit=10&offset=20")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		calls := history.ListCalls()
		last := calls[len(calls)-1]
		assert.Equal(t, 10, last.Limit)
		assert.Equal(t, 20, last.Offset)
	})

	t.Run("out of range values fall back", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/history?limit=9999&offset=-5")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		calls := history.ListCalls()
		last := calls[len(calls)-1]
		assert.Equal(t, 50, last.Limit)
		assert.Equal(t, 0, last.Offset)
	})
}

func TestServer_HistoryAdd(t *testing.T) {
	history := &mocks.HistoryMock{
		AddPageFunc: func(ctx context.Context, url string) error {
			if url == "bad" {
				return fmt.Errorf("invalid url")
			}
			return nil
		},
	}
	srv := New(testConfig(), &mocks.FeedMock{}, history, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("created", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/history?url=https://en.wikipedia.org/wiki/Sun", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("missing url", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/history", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("store rejects", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/history?url=bad", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_HistoryRemove(t *testing.T) {
	history := &mocks.HistoryMock{
		RemoveEntryFunc: func(ctx context.Context, url string) error { return nil },
		RemoveAllFunc:   func(ctx context.Context) error { return nil },
	}
	srv := New(testConfig(), &mocks.FeedMock{}, history, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("single entry", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/history?url=https://en.wikipedia.org/wiki/Sun", http.NoBody)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, history.RemoveEntryCalls(), 1)
		assert.Empty(t, history.RemoveAllCalls())
	})

	t.Run("everything", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/history", http.NoBody)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, history.RemoveAllCalls(), 1)
	})
}

func TestServer_Ping(t *testing.T) {
	srv := New(testConfig(), &mocks.FeedMock{}, &mocks.HistoryMock{}, &mocks.BlacklistMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
