package enrich

import (
	"strings"
	"sync"
	"time"

	"leadscout-engine/internal/domain"
)

// CacheEntry is one persisted lookup result. Entries with zero emails are
// never stored: negative results may flip as the directory improves.
type CacheEntry struct {
	Key             string              `json:"key"`
	Emails          []domain.RawContact `json:"emails"`
	Timestamp       time.Time           `json:"timestamp"`
	OriginalCompany string              `json:"original_company"`
}

// Cache is the in-memory lookup cache, keyed normalized(term):sourceTag.
// The run loop is the only writer during a run, but the API serves
// /cache/stats and /cache/clear from handler goroutines while a run is in
// flight, so the map is lock-guarded. Loading and persisting the snapshot
// are explicit operations owned by the caller; nothing here touches
// storage on its own.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]CacheEntry
	refresh map[string]bool
	now     func() time.Time
}

func NewCache(ttlDays int, alwaysRefresh []string) *Cache {
	c := &Cache{
		ttl:     time.Duration(ttlDays) * 24 * time.Hour,
		entries: make(map[string]CacheEntry),
		refresh: make(map[string]bool),
		now:     time.Now,
	}
	for _, n := range alwaysRefresh {
		if k := normalizeKey(n); k != "" {
			c.refresh[k] = true
		}
	}
	return c
}

// CacheKey builds the canonical entry key.
func CacheKey(term, sourceTag string) string {
	return normalizeKey(term) + ":" + sourceTag
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// Get returns a live entry. Stale entries and always-refresh companies
// miss; stale entries stay in the map until overwritten so a failed
// refresh does not also lose the snapshot row.
func (c *Cache) Get(term, sourceTag string) (CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.refresh[normalizeKey(term)] {
		return CacheEntry{}, false
	}
	e, ok := c.entries[CacheKey(term, sourceTag)]
	if !ok {
		return CacheEntry{}, false
	}
	if c.now().Sub(e.Timestamp) > c.ttl {
		return CacheEntry{}, false
	}
	return e, true
}

// Put stores a successful lookup. No-op when emails is empty.
func (c *Cache) Put(term, sourceTag, originalCompany string, emails []domain.RawContact) {
	if len(emails) == 0 {
		return
	}
	key := CacheKey(term, sourceTag)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = CacheEntry{
		Key:             key,
		Emails:          emails,
		Timestamp:       c.now(),
		OriginalCompany: originalCompany,
	}
}

// Load bulk-loads a persisted snapshot. Structurally broken entries are
// dropped one by one, never repaired, and never abort the load.
func (c *Cache) Load(entries []CacheEntry) (kept, dropped int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range entries {
		if !validEntry(e) {
			dropped++
			continue
		}
		c.entries[e.Key] = e
		kept++
	}
	return kept, dropped
}

func validEntry(e CacheEntry) bool {
	if e.Key == "" || e.Timestamp.IsZero() || len(e.Emails) == 0 {
		return false
	}
	for _, em := range e.Emails {
		if strings.TrimSpace(em.Email) == "" {
			return false
		}
	}
	return true
}

// Snapshot returns the entries for persistence.
func (c *Cache) Snapshot() []CacheEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CacheEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	return out
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]CacheEntry)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
