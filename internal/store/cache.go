package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CacheRow is one persisted lookup-cache entry. Emails stay as the JSON
// blob they were marshaled from; this package does not interpret them.
type CacheRow struct {
	Key             string
	OriginalCompany string
	EmailsJSON      []byte
	CachedAt        time.Time
}

// LoadCacheRows reads the whole contact cache. Rows with an unparsable
// timestamp come back zero-valued and are left for the caller to drop.
func LoadCacheRows(ctx context.Context, db *sql.DB) ([]CacheRow, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT key, original_company, emails, cached_at FROM contact_cache;`)
	if err != nil {
		return nil, fmt.Errorf("load contact cache: %w", err)
	}
	defer rows.Close()

	var out []CacheRow
	for rows.Next() {
		var r CacheRow
		var at string
		if err := rows.Scan(&r.Key, &r.OriginalCompany, &r.EmailsJSON, &at); err != nil {
			return nil, err
		}
		r.CachedAt, _ = time.Parse(time.RFC3339, at)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReplaceCacheRows swaps the persisted cache for the given snapshot in one
// transaction.
func ReplaceCacheRows(ctx context.Context, db *sql.DB, entries []CacheRow) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contact_cache;`); err != nil {
		return err
	}
	for _, e := range entries {
		if e.Key == "" || len(e.EmailsJSON) == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO contact_cache(key, original_company, emails, cached_at)
VALUES(?,?,?,?);`,
			e.Key, e.OriginalCompany, e.EmailsJSON,
			e.CachedAt.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("persist cache entry %q: %w", e.Key, err)
		}
	}
	return tx.Commit()
}
