package mock

import (
	"context"

	"github.com/fwojciec/docfind"
)

var _ docfind.ResultCache = (*ResultCache)(nil)

// ResultCache is a mock implementation of docfind.ResultCache.
type ResultCache struct {
	FindResultsFn   func(ctx context.Context, key string) ([]*docfind.Match, bool, error)
	SaveResultsFn   func(ctx context.Context, key string, matches []*docfind.Match) error
	ListEntriesFn   func(ctx context.Context) ([]*docfind.CacheEntry, error)
	DeleteResultsFn func(ctx context.Context, key string) error
}

func (c *ResultCache) FindResults(ctx context.Context, key string) ([]*docfind.Match, bool, error) {
	return c.FindResultsFn(ctx, key)
}

func (c *ResultCache) SaveResults(ctx context.Context, key string, matches []*docfind.Match) error {
	return c.SaveResultsFn(ctx, key, matches)
}

func (c *ResultCache) ListEntries(ctx context.Context) ([]*docfind.CacheEntry, error) {
	return c.ListEntriesFn(ctx)
}

func (c *ResultCache) DeleteResults(ctx context.Context, key string) error {
	return c.DeleteResultsFn(ctx, key)
}

// MapCache returns a ResultCache backed by a map. Useful when a test needs
// working cache semantics rather than scripted responses.
func MapCache() *ResultCache {
	entries := make(map[string][]*docfind.Match)
	return &ResultCache{
		FindResultsFn: func(_ context.Context, key string) ([]*docfind.Match, bool, error) {
			m, ok := entries[key]
			return m, ok, nil
		},
		SaveResultsFn: func(_ context.Context, key string, matches []*docfind.Match) error {
			entries[key] = matches
			return nil
		},
		ListEntriesFn: func(_ context.Context) ([]*docfind.CacheEntry, error) {
			var out []*docfind.CacheEntry
			for k, m := range entries {
				out = append(out, &docfind.CacheEntry{Key: k, Count: len(m)})
			}
			return out, nil
		},
		DeleteResultsFn: func(_ context.Context, key string) error {
			if _, ok := entries[key]; !ok {
				return docfind.Errorf(docfind.ENOTFOUND, "cache entry not found")
			}
			delete(entries, key)
			return nil
		},
	}
}
