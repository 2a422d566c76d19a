package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/docfind"
)

// Compile-time interface verification.
var _ docfind.ResultCache = (*ResultCache)(nil)

// ResultCache implements docfind.ResultCache using SQLite.
// Match sequences are stored as JSON arrays.
type ResultCache struct {
	db *DB
}

// NewResultCache creates a new ResultCache.
func NewResultCache(db *DB) *ResultCache {
	return &ResultCache{db: db}
}

// FindResults retrieves the matches stored under key.
func (c *ResultCache) FindResults(ctx context.Context, key string) ([]*docfind.Match, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx, `
		SELECT matches FROM results WHERE key = ?
	`, key).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unavailable("read", err)
	}

	matches := []*docfind.Match{}
	if err := json.Unmarshal([]byte(payload), &matches); err != nil {
		return nil, false, unavailable(fmt.Sprintf("decode %q", key), err)
	}
	return matches, true, nil
}

// SaveResults stores matches under key, replacing any existing entry.
func (c *ResultCache) SaveResults(ctx context.Context, key string, matches []*docfind.Match) error {
	if matches == nil {
		matches = []*docfind.Match{}
	}
	payload, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("encode results for %q: %w", key, err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO results (key, matches, match_count, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			matches = excluded.matches,
			match_count = excluded.match_count,
			created_at = excluded.created_at
	`, key, string(payload), len(matches), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return unavailable("write", err)
	}
	return nil
}

// ListEntries returns all stored entries ordered by key.
func (c *ResultCache) ListEntries(ctx context.Context) ([]*docfind.CacheEntry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT key, match_count, created_at FROM results ORDER BY key
	`)
	if err != nil {
		return nil, unavailable("read", err)
	}
	defer rows.Close()

	var entries []*docfind.CacheEntry
	for rows.Next() {
		var e docfind.CacheEntry
		var createdAt string
		if err := rows.Scan(&e.Key, &e.Count, &createdAt); err != nil {
			return nil, unavailable("read", err)
		}
		if e.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("read", err)
	}
	return entries, nil
}

// DeleteResults removes the entry stored under key.
func (c *ResultCache) DeleteResults(ctx context.Context, key string) error {
	result, err := c.db.ExecContext(ctx, "DELETE FROM results WHERE key = ?", key)
	if err != nil {
		return unavailable("write", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return unavailable("write", err)
	}
	if n == 0 {
		return docfind.Errorf(docfind.ENOTFOUND, "no cached results for %q", key)
	}
	return nil
}
