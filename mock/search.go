package mock

import (
	"context"

	"github.com/fwojciec/docfind"
)

var _ docfind.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docfind.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, dir, keyword string) ([]*docfind.Match, error)
}

func (s *SearchService) Search(ctx context.Context, dir, keyword string) ([]*docfind.Match, error) {
	return s.SearchFn(ctx, dir, keyword)
}
