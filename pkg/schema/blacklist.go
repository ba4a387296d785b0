package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"
)

const blacklistKey = "sections-blacklist"

// Blacklist is the persisted set of suppressed section identifiers.
// The schema consults it on every update pass.
type Blacklist struct {
	settings SettingStore

	mu  sync.RWMutex
	ids map[string]struct{}
}

// LoadBlacklist reads the persisted blacklist, empty when none stored
func LoadBlacklist(ctx context.Context, settings SettingStore) (*Blacklist, error) {
	b := &Blacklist{settings: settings, ids: make(map[string]struct{})}

	raw, err := settings.GetSetting(ctx, blacklistKey)
	if err != nil {
		return nil, fmt.Errorf("load blacklist: %w", err)
	}
	if raw == "" {
		return b, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("parse blacklist: %w", err)
	}
	for _, id := range ids {
		b.ids[id] = struct{}{}
	}
	return b, nil
}

// Contains reports whether a section identifier is suppressed
func (b *Blacklist) Contains(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.ids[id]
	return ok
}

// Add suppresses a section identifier and persists the set
func (b *Blacklist) Add(ctx context.Context, id string) error {
	b.mu.Lock()
	b.ids[id] = struct{}{}
	b.mu.Unlock()
	return b.save(ctx)
}

// Remove un-suppresses a section identifier and persists the set
func (b *Blacklist) Remove(ctx context.Context, id string) error {
	b.mu.Lock()
	delete(b.ids, id)
	b.mu.Unlock()
	return b.save(ctx)
}

// All returns the suppressed identifiers, sorted
func (b *Blacklist) All() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]string, 0, len(b.ids))
	for id := range b.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (b *Blacklist) save(ctx context.Context) error {
	data, err := json.Marshal(b.All())
	if err != nil {
		return fmt.Errorf("marshal blacklist: %w", err)
	}
	if err := b.settings.SetSetting(ctx, blacklistKey, string(data)); err != nil {
		// persistence failure keeps the in-memory set, retried next save
		lgr.Printf("[WARN] failed to persist blacklist: %v", err)
		return fmt.Errorf("persist blacklist: %w", err)
	}
	return nil
}
