// Package slog provides logging decorators for docfind services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docfind"
)

// Ensure LoggingWalker implements docfind.Walker.
var _ docfind.Walker = (*LoggingWalker)(nil)

// LoggingWalker wraps a Walker with logging.
type LoggingWalker struct {
	next   docfind.Walker
	logger *slog.Logger
}

// NewLoggingWalker creates a new LoggingWalker.
func NewLoggingWalker(next docfind.Walker, logger *slog.Logger) *LoggingWalker {
	return &LoggingWalker{next: next, logger: logger}
}

// Walk delegates to the wrapped walker and logs the traversal.
func (w *LoggingWalker) Walk(ctx context.Context, dir, keyword string) (matches []*docfind.Match, err error) {
	defer func(begin time.Time) {
		w.logger.Info("walk",
			"dir", dir,
			"keyword", keyword,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Walk(ctx, dir, keyword)
}
