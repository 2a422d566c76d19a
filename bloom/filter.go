// Package bloom provides a probabilistic set of cache keys.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// KeyFilter records which cache keys have been stored. A negative Test
// means the key was never added; a positive Test may be a false positive.
// It is safe for concurrent use.
type KeyFilter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewKeyFilter creates a filter sized for n expected keys with the given
// false positive rate.
func NewKeyFilter(n uint, fpRate float64) *KeyFilter {
	return &KeyFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records key.
func (f *KeyFilter) Add(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(key)
}

// Test returns true if key might have been added.
func (f *KeyFilter) Test(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *KeyFilter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}
