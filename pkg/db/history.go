package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// UpsertHistory inserts a history row or, when the URL already exists,
// updates its date and display URL leaving the other fields intact
func (db *DB) UpsertHistory(ctx context.Context, rec *HistoryRecord) error {
	query := `
		INSERT INTO history (url, display_url, fragment, scroll_position, date, significantly_viewed, in_the_news_notified_at)
		VALUES (:url, :display_url, :fragment, :scroll_position, :date, :significantly_viewed, :in_the_news_notified_at)
		ON CONFLICT(url) DO UPDATE SET date = excluded.date, display_url = excluded.display_url
	`
	if _, err := db.conn.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}
	return nil
}

// GetHistory retrieves a history row by normalized URL
func (db *DB) GetHistory(ctx context.Context, url string) (*HistoryRecord, error) {
	var rec HistoryRecord
	err := db.conn.GetContext(ctx, &rec, "SELECT * FROM history WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return &rec, nil
}

// UpdateHistoryScroll saves fragment and scroll position for an existing
// entry, reporting whether a row was updated
func (db *DB) UpdateHistoryScroll(ctx context.Context, url, fragment string, position float64) (bool, error) {
	res, err := db.conn.ExecContext(ctx,
		"UPDATE history SET fragment = ?, scroll_position = ? WHERE url = ?", fragment, position, url)
	if err != nil {
		return false, fmt.Errorf("update history scroll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return n > 0, nil
}

// MarkHistorySignificant flags an existing entry as significantly viewed.
// Already-significant rows are untouched, keeping the operation idempotent.
func (db *DB) MarkHistorySignificant(ctx context.Context, url string) (bool, error) {
	res, err := db.conn.ExecContext(ctx,
		"UPDATE history SET significantly_viewed = 1 WHERE url = ? AND significantly_viewed = 0", url)
	if err != nil {
		return false, fmt.Errorf("mark history significant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return n > 0, nil
}

// SetHistoryNotified records the in-the-news notification date on the
// given URLs. Rows already carrying the same date are left alone.
func (db *DB) SetHistoryNotified(ctx context.Context, date time.Time, urls ...string) error {
	for _, u := range urls {
		_, err := db.conn.ExecContext(ctx,
			"UPDATE history SET in_the_news_notified_at = ? WHERE url = ?", date, u)
		if err != nil {
			return fmt.Errorf("set history notified: %w", err)
		}
	}
	return nil
}

// DeleteHistory removes an entry, no error if missing
func (db *DB) DeleteHistory(ctx context.Context, url string) error {
	if _, err := db.conn.ExecContext(ctx, "DELETE FROM history WHERE url = ?", url); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

// DeleteAllHistory removes every entry
func (db *DB) DeleteAllHistory(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("delete all history: %w", err)
	}
	return nil
}

// MostRecentHistory returns the entry with the latest date
func (db *DB) MostRecentHistory(ctx context.Context) (*HistoryRecord, error) {
	var rec HistoryRecord
	err := db.conn.GetContext(ctx, &rec, "SELECT * FROM history ORDER BY date DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("most recent history: %w", err)
	}
	return &rec, nil
}

// CountHistory returns the number of history entries
func (db *DB) CountHistory(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM history"); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}

// CountSignificantHistorySince counts significantly viewed entries with
// date at or after the given time
func (db *DB) CountSignificantHistorySince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := db.conn.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM history WHERE significantly_viewed = 1 AND date >= ?", since)
	if err != nil {
		return 0, fmt.Errorf("count significant history: %w", err)
	}
	return count, nil
}

// ListHistory returns a page of entries ordered by date descending
func (db *DB) ListHistory(ctx context.Context, limit, offset int) ([]HistoryRecord, error) {
	var recs []HistoryRecord
	err := db.conn.SelectContext(ctx, &recs,
		"SELECT * FROM history ORDER BY date DESC, url LIMIT ? OFFSET ?", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return recs, nil
}
