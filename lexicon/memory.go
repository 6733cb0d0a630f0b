package lexicon

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SeedRow is one row used to build a MemoryStore, grouped by the table
// it belongs to. Grounded on ryanbastic-digitalpalireader's
// internal/models.DictEntry shape: a normalized key plus a
// source-tagged payload, indexed for exact-match lookup.
type SeedRow struct {
	// Surface is the normalized (diacritic-free) key most rows are
	// indexed by.
	Surface string
	// Raw, if set, indexes the row by its diacritic-bearing form
	// instead; exceptions are typically raw-specific.
	Raw      string
	Taqti    string
	IsVaried bool
	Source   Source
}

// MemoryStore is the reference Lookup implementation: four in-memory
// tables (exceptions, master, plurals, variations) consulted in the
// precedence order spec §4.3 requires, plus a short-TTL cache so a
// couplet that repeats a common word doesn't re-walk every table.
//
// The table/cache split is adapted from
// ryanbastic-digitalpalireader's internal/models (DictEntry, DictIndex)
// and internal/cache (a TTL map with a background sweep) — a web
// dictionary server's lookup path reshaped into a pull-based interface
// with no HTTP layer of its own.
type MemoryStore struct {
	exceptions map[string][]Entry
	master     map[string][]Entry
	plurals    map[string][]Entry
	variations map[string][]Entry

	cache *ttlCache
}

// NewMemoryStore builds a MemoryStore from seed rows. SeedRow carries no
// ID, so every Entry gets one synthesized with uuid and can always be
// cited in a word's explain trail.
func NewMemoryStore(rows []SeedRow) *MemoryStore {
	m := &MemoryStore{
		exceptions: make(map[string][]Entry),
		master:     make(map[string][]Entry),
		plurals:    make(map[string][]Entry),
		variations: make(map[string][]Entry),
		cache:      newTTLCache(5 * time.Minute),
	}
	for _, r := range rows {
		key := r.Surface
		if r.Raw != "" {
			key = r.Raw
		}
		e := Entry{
			ID:       uuid.NewString(),
			Taqti:    r.Taqti,
			IsVaried: r.IsVaried,
			Source:   r.Source,
		}
		switch r.Source {
		case SourceException:
			m.exceptions[key] = append(m.exceptions[key], e)
		case SourceMaster:
			m.master[key] = append(m.master[key], e)
		case SourcePlural:
			m.plurals[key] = append(m.plurals[key], e)
		case SourceVariation:
			m.variations[key] = append(m.variations[key], e)
		}
	}
	return m
}

// Lookup implements Lookup. Order: exceptions, then master, then
// plurals; the first non-empty wins, except that variations always
// extend whatever master produced (spec §4.3).
func (m *MemoryStore) Lookup(_ context.Context, surface, raw string) ([]Entry, error) {
	cacheKey := surface + "\x00" + raw
	if cached, ok := m.cache.get(cacheKey); ok {
		return cached, nil
	}

	var out []Entry
	if hits, ok := m.exceptions[raw]; ok && len(hits) > 0 {
		out = append(out, hits...)
	} else if hits, ok := m.exceptions[surface]; ok && len(hits) > 0 {
		out = append(out, hits...)
	} else if hits, ok := m.master[surface]; ok && len(hits) > 0 {
		out = append(out, hits...)
		out = append(out, m.variations[surface]...)
	} else if hits, ok := m.plurals[surface]; ok && len(hits) > 0 {
		out = append(out, hits...)
		out = append(out, m.variations[surface]...)
	}

	m.cache.set(cacheKey, out)
	return out, nil
}

// ttlCache is a minimal TTL map, adapted from
// ryanbastic-digitalpalireader's internal/cache.Cache: a mutex-guarded
// map with a background sweep, trimmed to the one value shape
// (lookup results) this package needs.
type ttlCache struct {
	mu    sync.RWMutex
	items map[string]ttlItem
	ttl   time.Duration
}

type ttlItem struct {
	value     []Entry
	expiresAt time.Time
}

func newTTLCache(ttl time.Duration) *ttlCache {
	c := &ttlCache{items: make(map[string]ttlItem), ttl: ttl}
	go c.sweep()
	return c
}

func (c *ttlCache) get(key string) ([]Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[key]
	if !ok || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

func (c *ttlCache) set(key string, value []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = ttlItem{value: value, expiresAt: time.Now().Add(c.ttl)}
}

func (c *ttlCache) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()
	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for k, v := range c.items {
			if now.After(v.expiresAt) {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}
