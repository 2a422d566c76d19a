package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docfind"
)

// Ensure LoggingDocumentSearcher implements docfind.DocumentSearcher.
var _ docfind.DocumentSearcher = (*LoggingDocumentSearcher)(nil)

// LoggingDocumentSearcher wraps a DocumentSearcher with per-file debug logging.
type LoggingDocumentSearcher struct {
	next   docfind.DocumentSearcher
	logger *slog.Logger
}

// NewLoggingDocumentSearcher creates a new LoggingDocumentSearcher.
func NewLoggingDocumentSearcher(next docfind.DocumentSearcher, logger *slog.Logger) *LoggingDocumentSearcher {
	return &LoggingDocumentSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the file scan.
func (s *LoggingDocumentSearcher) Search(ctx context.Context, path string, m *docfind.Matcher) (matches []*docfind.Match, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("scan",
			"path", path,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, path, m)
}
