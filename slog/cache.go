package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docfind"
)

// Ensure LoggingResultCache implements docfind.ResultCache.
var _ docfind.ResultCache = (*LoggingResultCache)(nil)

// LoggingResultCache wraps a ResultCache with debug logging.
type LoggingResultCache struct {
	next   docfind.ResultCache
	logger *slog.Logger
}

// NewLoggingResultCache creates a new LoggingResultCache.
func NewLoggingResultCache(next docfind.ResultCache, logger *slog.Logger) *LoggingResultCache {
	return &LoggingResultCache{next: next, logger: logger}
}

func (c *LoggingResultCache) FindResults(ctx context.Context, key string) (matches []*docfind.Match, ok bool, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache lookup",
			"key", key,
			"hit", ok,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.FindResults(ctx, key)
}

func (c *LoggingResultCache) SaveResults(ctx context.Context, key string, matches []*docfind.Match) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache save",
			"key", key,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SaveResults(ctx, key, matches)
}

func (c *LoggingResultCache) ListEntries(ctx context.Context) ([]*docfind.CacheEntry, error) {
	return c.next.ListEntries(ctx)
}

func (c *LoggingResultCache) DeleteResults(ctx context.Context, key string) (err error) {
	defer func() {
		c.logger.Debug("cache delete", "key", key, "err", err)
	}()
	return c.next.DeleteResults(ctx, key)
}
