package domain

import "time"

// HistoryEntry is one visited page record, keyed by normalized URL.
// At most one entry exists per normalized URL; revisits update Date.
type HistoryEntry struct {
	URL                 string     // normalized article URL, the entry key
	DisplayURL          string     // original URL as visited
	Fragment            string     // last viewed in-page fragment
	ScrollPosition      float64    // last saved scroll offset
	Date                time.Time  // last visit time
	SignificantlyViewed bool       // user attention passed the threshold
	InTheNewsNotifiedAt *time.Time // last in-the-news notification for this article
}
