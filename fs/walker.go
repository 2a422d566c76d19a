// Package fs walks document trees on the local filesystem.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docfind"
)

var _ docfind.Walker = (*Walker)(nil)

// SkipFunc is called for every file or directory the walk cannot read.
type SkipFunc func(path string, err error)

// Walker implements docfind.Walker over a local directory tree.
// Documents are searched one at a time in the calling goroutine.
type Walker struct {
	// Formats selects the searcher for each file by extension.
	Formats docfind.FormatRegistry

	// ContextSize is the number of characters kept on each side of a
	// match. NewWalker sets it to docfind.DefaultContextSize; zero keeps
	// only the keyword.
	ContextSize int

	// OnSkip, if set, receives documents and directories that were skipped
	// because they could not be read.
	OnSkip SkipFunc
}

// NewWalker creates a new Walker using formats.
func NewWalker(formats docfind.FormatRegistry) *Walker {
	return &Walker{Formats: formats, ContextSize: docfind.DefaultContextSize}
}

// Walk searches every registered document under dir for keyword.
// Files with unregistered extensions are ignored. A missing dir yields no
// matches. A symlinked dir is followed and matches report paths under dir.
// Only context cancellation stops the walk early.
func (w *Walker) Walk(ctx context.Context, dir, keyword string) ([]*docfind.Match, error) {
	m := docfind.NewMatcher(keyword, w.ContextSize)

	root, err := filepath.EvalSymlinks(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		root = dir
	}

	var matches []*docfind.Match
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		path = underDir(dir, root, path)
		if err != nil {
			if d == nil && errors.Is(err, iofs.ErrNotExist) {
				return iofs.SkipAll
			}
			w.skip(path, err)
			return nil
		}
		if d.IsDir() || !isFile(path, d) {
			return nil
		}

		searcher, ok := w.Formats.Lookup(path)
		if !ok {
			return nil
		}
		found, err := searcher.Search(ctx, path, m)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			w.skip(path, err)
			return nil
		}
		matches = append(matches, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// underDir maps path, found while walking root, back under dir.
func underDir(dir, root, path string) string {
	if root == dir {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.Join(dir, rel)
}

func (w *Walker) skip(path string, err error) {
	if w.OnSkip != nil {
		w.OnSkip(path, err)
	}
}

// isFile reports whether d is a regular file or a symlink to one.
func isFile(path string, d iofs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// Exists reports whether dir exists and is a directory.
func Exists(dir string) bool {
	fi, err := os.Stat(dir)
	return err == nil && fi.IsDir()
}
