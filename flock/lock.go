// Package flock serializes access to the cache store across processes.
package flock

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docfind"
	"github.com/gofrs/flock"
)

// DefaultRetryDelay is how often Lock polls a held lock.
const DefaultRetryDelay = 50 * time.Millisecond

// StoreLock is an exclusive lock on a sibling file of the cache store.
// The lock file lives at <store path>.lock.
type StoreLock struct {
	path       string
	flock      *flock.Flock
	locked     bool
	RetryDelay time.Duration
}

// NewStoreLock creates a lock for the store at storePath.
func NewStoreLock(storePath string) *StoreLock {
	path := storePath + ".lock"
	return &StoreLock{
		path:       path,
		flock:      flock.New(path),
		RetryDelay: DefaultRetryDelay,
	}
}

// Lock blocks until the lock is acquired or ctx is done.
func (l *StoreLock) Lock(ctx context.Context) error {
	if err := l.ensureDir(); err != nil {
		return err
	}
	ok, err := l.flock.TryLockContext(ctx, l.RetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return docfind.Errorf(docfind.EUNAVAILABLE, "cannot lock cache store: %v", err)
	}
	if !ok {
		return docfind.Errorf(docfind.EUNAVAILABLE, "cache store is locked by another process")
	}
	l.locked = true
	return nil
}

// TryLock acquires the lock without blocking. It reports false if another
// holder has it.
func (l *StoreLock) TryLock() (bool, error) {
	if err := l.ensureDir(); err != nil {
		return false, err
	}
	ok, err := l.flock.TryLock()
	if err != nil {
		return false, docfind.Errorf(docfind.EUNAVAILABLE, "cannot lock cache store: %v", err)
	}
	if ok {
		l.locked = true
	}
	return ok, nil
}

// Unlock releases the lock. It is a no-op when the lock is not held.
func (l *StoreLock) Unlock() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return docfind.Errorf(docfind.EUNAVAILABLE, "cannot unlock cache store: %v", err)
	}
	return nil
}

// Path returns the lock file path.
func (l *StoreLock) Path() string {
	return l.path
}

// Locked reports whether this StoreLock holds the lock.
func (l *StoreLock) Locked() bool {
	return l.locked
}

func (l *StoreLock) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return docfind.Errorf(docfind.EUNAVAILABLE, "cannot create lock directory: %v", err)
	}
	return nil
}
