// Package search implements the cached keyword search entry point.
// It consults the result cache first and walks the corpus only on a miss.
package search

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docfind"
	"github.com/fwojciec/docfind/bloom"
	"golang.org/x/sync/singleflight"
)

var _ docfind.SearchService = (*Service)(nil)

// Service implements docfind.SearchService.
type Service struct {
	Cache  docfind.ResultCache
	Walker docfind.Walker

	// Keys, if set, holds every key present in Cache. A negative test
	// skips the cache lookup. Keys must be seeded before the first search.
	Keys *bloom.KeyFilter

	// Scoped keys the cache by directory and keyword instead of keyword
	// alone. When false, a keyword searched once is served from the cache
	// for every directory.
	Scoped bool

	group   singleflight.Group
	mu      sync.Mutex
	flights map[string]*flight
}

// NewService creates a new Service.
func NewService(cache docfind.ResultCache, walker docfind.Walker) *Service {
	return &Service{Cache: cache, Walker: walker}
}

// Search returns all matches for keyword under dir. Cached results are
// returned without walking dir. On a miss the walk result is stored before
// it is returned; a store failure fails the search.
// Concurrent searches for the same cache key share a single walk, which is
// canceled only once every caller sharing it has gone.
func (s *Service) Search(ctx context.Context, dir, keyword string) ([]*docfind.Match, error) {
	req := docfind.SearchRequest{Dir: dir, Keyword: keyword}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key, err := CacheKey(dir, keyword, s.Scoped)
	if err != nil {
		return nil, err
	}

	for {
		matches, err := s.share(ctx, key, func(ctx context.Context) ([]*docfind.Match, error) {
			return s.Walker.Walk(ctx, dir, keyword)
		})
		if errors.Is(err, errFlightCanceled) && ctx.Err() == nil {
			// Joined a walk abandoned by its other callers; start a new one.
			continue
		}
		if errors.Is(err, errFlightCanceled) {
			return nil, ctx.Err()
		}
		return matches, err
	}
}

func (s *Service) getOrCompute(ctx context.Context, key string, compute ComputeFunc) ([]*docfind.Match, error) {
	if s.Keys != nil && !s.Keys.Test(key) {
		matches, err := computeAndSave(ctx, s.Cache, key, compute)
		if err != nil {
			return nil, err
		}
		s.Keys.Add(key)
		return matches, nil
	}

	matches, err := GetOrCompute(ctx, s.Cache, key, compute)
	if err == nil && s.Keys != nil {
		s.Keys.Add(key)
	}
	return matches, err
}

// Result is the outcome of an asynchronous search.
type Result struct {
	Matches []*docfind.Match
	Err     error
}

// SearchAsync runs Search on a separate goroutine and delivers exactly one
// Result on the returned channel, which is then closed.
func (s *Service) SearchAsync(ctx context.Context, dir, keyword string) <-chan Result {
	return Async(ctx, s, dir, keyword)
}

// Async runs svc.Search on a separate goroutine and delivers exactly one
// Result on the returned channel, which is then closed.
func Async(ctx context.Context, svc docfind.SearchService, dir, keyword string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		matches, err := svc.Search(ctx, dir, keyword)
		ch <- Result{Matches: matches, Err: err}
	}()
	return ch
}

// ComputeFunc produces the matches for a cache miss.
type ComputeFunc func(ctx context.Context) ([]*docfind.Match, error)

// GetOrCompute returns the matches stored under key. On a miss it calls
// compute, stores the result under key, and returns it. compute is never
// called on a hit.
func GetOrCompute(ctx context.Context, cache docfind.ResultCache, key string, compute ComputeFunc) ([]*docfind.Match, error) {
	matches, ok, err := cache.FindResults(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return matches, nil
	}
	return computeAndSave(ctx, cache, key, compute)
}

func computeAndSave(ctx context.Context, cache docfind.ResultCache, key string, compute ComputeFunc) ([]*docfind.Match, error) {
	matches, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []*docfind.Match{}
	}
	if err := cache.SaveResults(ctx, key, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// CacheKey returns the cache key for a search. Unscoped keys are the
// keyword itself. Scoped keys append a fingerprint of the absolute
// directory path.
func CacheKey(dir, keyword string, scoped bool) (string, error) {
	if !scoped {
		return keyword, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory %q: %w", dir, err)
	}
	return keyword + "@" + ComputeHash(abs), nil
}

// ComputeHash computes a hex fingerprint of s using xxhash.
func ComputeHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
