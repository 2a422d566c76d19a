// Package lru provides an in-memory front for a docfind.ResultCache.
package lru

import (
	"context"

	"github.com/fwojciec/docfind"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the default number of keyword results held in memory.
const DefaultSize = 256

var _ docfind.ResultCache = (*ResultCache)(nil)

// ResultCache serves recently used results from memory and delegates
// everything else to Next. Writes go to Next first and reach memory only
// once Next has accepted them.
type ResultCache struct {
	Next  docfind.ResultCache
	cache *lru.Cache[string, []*docfind.Match]
}

// NewResultCache wraps next with an LRU of the given size. A size of zero
// or less uses DefaultSize.
func NewResultCache(next docfind.ResultCache, size int) *ResultCache {
	if size <= 0 {
		size = DefaultSize
	}
	cache, _ := lru.New[string, []*docfind.Match](size)
	return &ResultCache{Next: next, cache: cache}
}

func (c *ResultCache) FindResults(ctx context.Context, key string) ([]*docfind.Match, bool, error) {
	if matches, ok := c.cache.Get(key); ok {
		return matches, true, nil
	}

	matches, ok, err := c.Next.FindResults(ctx, key)
	if err != nil || !ok {
		return matches, ok, err
	}
	c.cache.Add(key, matches)
	return matches, true, nil
}

func (c *ResultCache) SaveResults(ctx context.Context, key string, matches []*docfind.Match) error {
	if err := c.Next.SaveResults(ctx, key, matches); err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, matches)
	return nil
}

func (c *ResultCache) ListEntries(ctx context.Context) ([]*docfind.CacheEntry, error) {
	return c.Next.ListEntries(ctx)
}

func (c *ResultCache) DeleteResults(ctx context.Context, key string) error {
	c.cache.Remove(key)
	return c.Next.DeleteResults(ctx, key)
}

// Len returns the number of results held in memory.
func (c *ResultCache) Len() int {
	return c.cache.Len()
}
