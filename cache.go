package docfind

import (
	"context"
	"time"
)

// CacheEntry describes one stored result set.
type CacheEntry struct {
	Key       string    `json:"key"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

// ResultCache is a durable mapping from a cache key to the matches computed
// for it. Entries are never expired; a stored result set is served until it
// is deleted explicitly.
type ResultCache interface {
	// FindResults returns the matches stored under key.
	// The bool is false when no entry exists.
	FindResults(ctx context.Context, key string) ([]*Match, bool, error)

	// SaveResults stores matches under key, replacing any existing entry.
	SaveResults(ctx context.Context, key string, matches []*Match) error

	// ListEntries returns all stored entries ordered by key.
	ListEntries(ctx context.Context) ([]*CacheEntry, error)

	// DeleteResults removes the entry for key.
	// Returns ENOTFOUND if no entry exists.
	DeleteResults(ctx context.Context, key string) error
}
