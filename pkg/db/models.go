package db

import (
	"database/sql"
	"time"
)

// HistoryRecord is one row in the history table, keyed by normalized URL
type HistoryRecord struct {
	URL                 string       `db:"url"`
	DisplayURL          string       `db:"display_url"`
	Fragment            string       `db:"fragment"`
	ScrollPosition      float64      `db:"scroll_position"`
	Date                time.Time    `db:"date"`
	SignificantlyViewed bool         `db:"significantly_viewed"`
	InTheNewsNotifiedAt sql.NullTime `db:"in_the_news_notified_at"`
}

// Setting is one row in the settings table
type Setting struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
