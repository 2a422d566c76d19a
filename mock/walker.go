package mock

import (
	"context"

	"github.com/fwojciec/docfind"
)

var _ docfind.Walker = (*Walker)(nil)

// Walker is a mock implementation of docfind.Walker.
type Walker struct {
	WalkFn func(ctx context.Context, dir, keyword string) ([]*docfind.Match, error)
}

func (w *Walker) Walk(ctx context.Context, dir, keyword string) ([]*docfind.Match, error) {
	return w.WalkFn(ctx, dir, keyword)
}
