package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// SectionType identifies the content category a section belongs to.
// The numeric order of the constants is the display precedence: lower
// values sort before higher ones in the explore feed.
type SectionType int

// Section types in display precedence order
const (
	SectionContinueReading SectionType = iota
	SectionMostRead
	SectionNearby
	SectionRandom
	SectionMainPage
	SectionNews
	SectionRSS
)

// String returns the stable textual name used for persistence and APIs
func (t SectionType) String() string {
	switch t {
	case SectionContinueReading:
		return "continue-reading"
	case SectionMostRead:
		return "most-read"
	case SectionNearby:
		return "nearby"
	case SectionRandom:
		return "random"
	case SectionMainPage:
		return "main-page"
	case SectionNews:
		return "news"
	case SectionRSS:
		return "rss"
	default:
		return "unknown"
	}
}

// ParseSectionType converts a persisted name back to a SectionType
func ParseSectionType(s string) (SectionType, bool) {
	for _, t := range []SectionType{SectionContinueReading, SectionMostRead, SectionNearby,
		SectionRandom, SectionMainPage, SectionNews, SectionRSS} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// MarshalJSON serializes the type as its stable name
func (t SectionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON restores the type from its stable name
func (t *SectionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseSectionType(s)
	if !ok {
		return fmt.Errorf("unknown section type %q", s)
	}
	*t = parsed
	return nil
}

// SectionState is the fetch state of a section controller
type SectionState int

// Section controller states
const (
	StateIdle SectionState = iota
	StateLoading
	StateLoaded
	StateError
)

// String returns the textual state name
func (s SectionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Section is the lightweight descriptor the schema persists and orders.
// Identity is ID, unique within a schema at any instant. SortDate breaks
// ties between sections of the same type, most recent first.
type Section struct {
	ID               string      `json:"id"`
	Type             SectionType `json:"type"`
	SortDate         time.Time   `json:"sort_date"`
	LastUpdatedAt    *time.Time  `json:"last_updated_at,omitempty"`
	PlaceholderCount int         `json:"placeholder_count,omitempty"`
}
