package enrich

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"leadscout-engine/internal/domain"
	"leadscout-engine/internal/store"
)

// LoadCacheFromDB hydrates the cache from the sqlite snapshot. Rows that
// fail JSON decode or entry validation are dropped, not repaired.
func LoadCacheFromDB(ctx context.Context, db *sql.DB, c *Cache) error {
	rows, err := store.LoadCacheRows(ctx, db)
	if err != nil {
		return err
	}

	entries := make([]CacheEntry, 0, len(rows))
	for _, r := range rows {
		var emails []domain.RawContact
		if err := json.Unmarshal(r.EmailsJSON, &emails); err != nil {
			log.Printf("[cache] dropping row %q: %v", r.Key, err)
			continue
		}
		entries = append(entries, CacheEntry{
			Key:             r.Key,
			Emails:          emails,
			Timestamp:       r.CachedAt,
			OriginalCompany: r.OriginalCompany,
		})
	}

	kept, dropped := c.Load(entries)
	log.Printf("[cache] loaded %d entries (%d dropped)", kept, dropped+len(rows)-len(entries))
	return nil
}

// SaveCacheToDB persists the current cache snapshot, replacing what was
// there.
func SaveCacheToDB(ctx context.Context, db *sql.DB, c *Cache) error {
	snap := c.Snapshot()
	rows := make([]store.CacheRow, 0, len(snap))
	for _, e := range snap {
		b, err := json.Marshal(e.Emails)
		if err != nil {
			continue
		}
		rows = append(rows, store.CacheRow{
			Key:             e.Key,
			OriginalCompany: e.OriginalCompany,
			EmailsJSON:      b,
			CachedAt:        e.Timestamp,
		})
	}
	return store.ReplaceCacheRows(ctx, db, rows)
}
