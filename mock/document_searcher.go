package mock

import (
	"context"

	"github.com/fwojciec/docfind"
)

var _ docfind.DocumentSearcher = (*DocumentSearcher)(nil)

// DocumentSearcher is a mock implementation of docfind.DocumentSearcher.
type DocumentSearcher struct {
	SearchFn func(ctx context.Context, path string, m *docfind.Matcher) ([]*docfind.Match, error)
}

func (s *DocumentSearcher) Search(ctx context.Context, path string, m *docfind.Matcher) ([]*docfind.Match, error) {
	return s.SearchFn(ctx, path, m)
}
