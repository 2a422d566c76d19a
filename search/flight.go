package search

import (
	"context"
	"errors"

	"github.com/fwojciec/docfind"
)

// errFlightCanceled is returned to callers of a shared walk whose context
// was canceled because all of its callers left.
var errFlightCanceled = errors.New("shared search canceled")

// flight is the context a shared walk runs under. It is canceled when its
// last waiter leaves.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// share runs compute for key at most once across concurrent callers. Each
// caller stops waiting when its own ctx is done.
func (s *Service) share(ctx context.Context, key string, compute ComputeFunc) ([]*docfind.Match, error) {
	f := s.join(ctx, key)
	defer s.leave(key, f)

	ch := s.group.DoChan(key, func() (any, error) {
		matches, err := s.getOrCompute(f.ctx, key, compute)
		if err != nil && f.ctx.Err() != nil {
			return nil, errFlightCanceled
		}
		return matches, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.([]*docfind.Match), nil
	}
}

func (s *Service) join(ctx context.Context, key string) *flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[key]
	if !ok || f.ctx.Err() != nil {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: fctx, cancel: cancel}
		if s.flights == nil {
			s.flights = make(map[string]*flight)
		}
		s.flights[key] = f
	}
	f.waiters++
	return f
}

func (s *Service) leave(key string, f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if s.flights[key] == f {
		delete(s.flights, key)
	}
}
