package enrich

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout-engine/internal/domain"
)

func testContacts() []domain.RawContact {
	return []domain.RawContact{
		{Email: "jane@balthazar.com", FirstName: "Jane", Position: "HR Director"},
	}
}

func TestCachePutGet(t *testing.T) {
	c := NewCache(30, nil)

	c.Put("Balthazar", "primary:name", "Balthazar", testContacts())

	e, ok := c.Get("Balthazar", "primary:name")
	require.True(t, ok)
	assert.Equal(t, "Balthazar", e.OriginalCompany)
	assert.Len(t, e.Emails, 1)

	// key normalizes case and spacing
	_, ok = c.Get("  balthazar ", "primary:name")
	assert.True(t, ok)

	// different source tag is a different entry
	_, ok = c.Get("Balthazar", "primary:domain")
	assert.False(t, ok)
}

func TestCacheTTL(t *testing.T) {
	c := NewCache(30, nil)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put("Balthazar", "primary:name", "Balthazar", testContacts())

	now = now.Add(29 * 24 * time.Hour)
	_, ok := c.Get("Balthazar", "primary:name")
	assert.True(t, ok)

	now = now.Add(2 * 24 * time.Hour)
	_, ok = c.Get("Balthazar", "primary:name")
	assert.False(t, ok, "stale entries must miss")
}

func TestCacheAlwaysRefresh(t *testing.T) {
	c := NewCache(30, []string{"Union Square Cafe"})

	c.Put("Union Square Cafe", "primary:name", "Union Square Cafe", testContacts())
	_, ok := c.Get("union square cafe", "primary:name")
	assert.False(t, ok, "always-refresh names never hit")

	c.Put("Balthazar", "primary:name", "Balthazar", testContacts())
	_, ok = c.Get("Balthazar", "primary:name")
	assert.True(t, ok)
}

func TestCachePutEmptyIsNoop(t *testing.T) {
	c := NewCache(30, nil)
	c.Put("Balthazar", "primary:name", "Balthazar", nil)
	assert.Equal(t, 0, c.Len())
}

func TestCacheLoadDropsBrokenEntries(t *testing.T) {
	c := NewCache(30, nil)
	now := time.Now()

	entries := []CacheEntry{
		{Key: "balthazar:primary:name", Emails: testContacts(), Timestamp: now},
		{Key: "", Emails: testContacts(), Timestamp: now},
		{Key: "no-timestamp:primary:name", Emails: testContacts()},
		{Key: "no-emails:primary:name", Timestamp: now},
		{Key: "blank-email:primary:name", Emails: []domain.RawContact{{Email: "  "}}, Timestamp: now},
	}

	kept, dropped := c.Load(entries)
	assert.Equal(t, 1, kept)
	assert.Equal(t, 4, dropped)
	assert.Equal(t, 1, c.Len())
}

// The run loop writes while API handlers read stats or clear the cache;
// run with -race to catch unguarded access.
func TestCacheConcurrentReadersAndWriters(t *testing.T) {
	c := NewCache(30, nil)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c.Put("Balthazar", "primary:name", "Balthazar", testContacts())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = c.Len()
			_, _ = c.Get("Balthazar", "primary:name")
			_ = c.Snapshot()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			c.Clear()
		}
	}()

	wg.Wait()
}

func TestCacheClearAndSnapshot(t *testing.T) {
	c := NewCache(30, nil)
	c.Put("A Co", "primary:name", "A Co", testContacts())
	c.Put("B Co", "primary:name", "B Co", testContacts())

	assert.Len(t, c.Snapshot(), 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Snapshot())
}
