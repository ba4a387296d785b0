package db

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	database, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, database.Close())
	})
	return database
}

func TestDB_New(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Ping(context.Background()))
	assert.NotNil(t, database.DB())
}

func TestDB_History_Upsert(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	first := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	rec := &HistoryRecord{
		URL:        "https://en.wikipedia.org/wiki/Albert_Einstein",
		DisplayURL: "https://en.m.wikipedia.org/wiki/Albert_Einstein",
		Date:       first,
	}
	require.NoError(t, database.UpsertHistory(ctx, rec))

	count, err := database.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// revisiting the same article bumps the date instead of duplicating
	second := first.Add(24 * time.Hour)
	rec2 := &HistoryRecord{
		URL:        "https://en.wikipedia.org/wiki/Albert_Einstein",
		DisplayURL: "https://en.wikipedia.org/wiki/Albert_Einstein",
		Date:       second,
	}
	require.NoError(t, database.UpsertHistory(ctx, rec2))

	count, err = database.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "revisit must not create a second row")

	got, err := database.GetHistory(ctx, "https://en.wikipedia.org/wiki/Albert_Einstein")
	require.NoError(t, err)
	assert.Equal(t, second.Unix(), got.Date.Unix())
	assert.Equal(t, "https://en.wikipedia.org/wiki/Albert_Einstein", got.DisplayURL, "display url follows last visit")
}

func TestDB_History_UpsertKeepsFlags(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	rec := &HistoryRecord{URL: "https://en.wikipedia.org/wiki/One", Date: time.Now()}
	require.NoError(t, database.UpsertHistory(ctx, rec))

	updated, err := database.MarkHistorySignificant(ctx, rec.URL)
	require.NoError(t, err)
	assert.True(t, updated)

	// re-adding the page keeps the significant flag
	rec.Date = time.Now().Add(time.Hour)
	require.NoError(t, database.UpsertHistory(ctx, rec))

	got, err := database.GetHistory(ctx, rec.URL)
	require.NoError(t, err)
	assert.True(t, got.SignificantlyViewed)
}

func TestDB_History_GetNotFound(t *testing.T) {
	database := setupTestDB(t)

	_, err := database.GetHistory(context.Background(), "https://en.wikipedia.org/wiki/Missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDB_History_UpdateScroll(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	updated, err := database.UpdateHistoryScroll(ctx, "https://en.wikipedia.org/wiki/Missing", "Intro", 0.5)
	require.NoError(t, err)
	assert.False(t, updated, "no row means no update")

	rec := &HistoryRecord{URL: "https://en.wikipedia.org/wiki/One", Date: time.Now()}
	require.NoError(t, database.UpsertHistory(ctx, rec))

	updated, err = database.UpdateHistoryScroll(ctx, rec.URL, "History", 0.75)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := database.GetHistory(ctx, rec.URL)
	require.NoError(t, err)
	assert.Equal(t, "History", got.Fragment)
	assert.InDelta(t, 0.75, got.ScrollPosition, 0.0001)
}

func TestDB_History_MarkSignificantIdempotent(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	rec := &HistoryRecord{URL: "https://en.wikipedia.org/wiki/One", Date: time.Now()}
	require.NoError(t, database.UpsertHistory(ctx, rec))

	updated, err := database.MarkHistorySignificant(ctx, rec.URL)
	require.NoError(t, err)
	assert.True(t, updated, "first call flips the flag")

	updated, err = database.MarkHistorySignificant(ctx, rec.URL)
	require.NoError(t, err)
	assert.False(t, updated, "second call is a no-op")
}

func TestDB_History_SetNotified(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	urls := []string{"https://en.wikipedia.org/wiki/One", "https://en.wikipedia.org/wiki/Two"}
	for _, u := range urls {
		require.NoError(t, database.UpsertHistory(ctx, &HistoryRecord{URL: u, Date: time.Now()}))
	}

	notified := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, database.SetHistoryNotified(ctx, notified, urls...))

	for _, u := range urls {
		got, err := database.GetHistory(ctx, u)
		require.NoError(t, err)
		require.True(t, got.InTheNewsNotifiedAt.Valid)
		assert.Equal(t, notified.Unix(), got.InTheNewsNotifiedAt.Time.Unix())
	}
}

func TestDB_History_CountSignificantSince(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	now := time.Now()
	entries := []struct {
		url         string
		date        time.Time
		significant bool
	}{
		{"https://en.wikipedia.org/wiki/Recent1", now.Add(-1 * time.Hour), true},
		{"https://en.wikipedia.org/wiki/Recent2", now.Add(-2 * time.Hour), true},
		{"https://en.wikipedia.org/wiki/RecentPlain", now.Add(-3 * time.Hour), false},
		{"https://en.wikipedia.org/wiki/Ancient", now.Add(-60 * 24 * time.Hour), true},
	}
	for _, e := range entries {
		require.NoError(t, database.UpsertHistory(ctx, &HistoryRecord{URL: e.url, Date: e.date}))
		if e.significant {
			_, err := database.MarkHistorySignificant(ctx, e.url)
			require.NoError(t, err)
		}
	}

	count, err := database.CountSignificantHistorySince(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, count, "old and non-significant entries excluded")
}

func TestDB_History_MostRecentAndList(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	_, err := database.MostRecentHistory(ctx)
	assert.ErrorIs(t, err, ErrNotFound, "empty history")

	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := &HistoryRecord{
			URL:  "https://en.wikipedia.org/wiki/Page" + string(rune('A'+i)),
			Date: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, database.UpsertHistory(ctx, rec))
	}

	latest, err := database.MostRecentHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://en.wikipedia.org/wiki/PageE", latest.URL)

	page, err := database.ListHistory(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "https://en.wikipedia.org/wiki/PageE", page[0].URL, "newest first")
	assert.Equal(t, "https://en.wikipedia.org/wiki/PageD", page[1].URL)

	page, err = database.ListHistory(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "https://en.wikipedia.org/wiki/PageA", page[0].URL)
}

func TestDB_History_Delete(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	for _, u := range []string{"https://en.wikipedia.org/wiki/One", "https://en.wikipedia.org/wiki/Two"} {
		require.NoError(t, database.UpsertHistory(ctx, &HistoryRecord{URL: u, Date: time.Now()}))
	}

	require.NoError(t, database.DeleteHistory(ctx, "https://en.wikipedia.org/wiki/One"))
	count, err := database.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, database.DeleteHistory(ctx, "https://en.wikipedia.org/wiki/Never"), "deleting a missing row is fine")

	require.NoError(t, database.DeleteAllHistory(ctx))
	count, err = database.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDB_Settings(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	val, err := database.GetSetting(ctx, "sections")
	require.NoError(t, err)
	assert.Empty(t, val, "missing key reads as empty")

	require.NoError(t, database.SetSetting(ctx, "sections", `["most-read"]`))
	val, err = database.GetSetting(ctx, "sections")
	require.NoError(t, err)
	assert.Equal(t, `["most-read"]`, val)

	require.NoError(t, database.SetSetting(ctx, "sections", `["most-read","news"]`))
	val, err = database.GetSetting(ctx, "sections")
	require.NoError(t, err)
	assert.Equal(t, `["most-read","news"]`, val, "set overwrites")

	require.NoError(t, database.DeleteSetting(ctx, "sections"))
	val, err = database.GetSetting(ctx, "sections")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestDB_InTransaction(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	err := database.InTransaction(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "k", "v")
		return err
	})
	require.NoError(t, err)

	val, err := database.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}
