package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docfind"
	"github.com/google/uuid"
)

// Ensure LoggingSearchService implements docfind.SearchService.
var _ docfind.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging. Each search is
// tagged with a random search_id.
type LoggingSearchService struct {
	next   docfind.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next docfind.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the outcome.
func (s *LoggingSearchService) Search(ctx context.Context, dir, keyword string) (matches []*docfind.Match, err error) {
	id := uuid.NewString()
	defer func(begin time.Time) {
		s.logger.Info("search",
			"search_id", id,
			"dir", dir,
			"keyword", keyword,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, dir, keyword)
}
