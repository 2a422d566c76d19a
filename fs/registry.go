package fs

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docfind"
)

var _ docfind.FormatRegistry = (*Registry)(nil)

// Registry maps lowercase file extensions to document searchers.
type Registry struct {
	searchers map[string]docfind.DocumentSearcher
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		searchers: make(map[string]docfind.DocumentSearcher),
	}
}

// Register adds a searcher for ext. The leading dot is optional.
// If a searcher is already registered for ext, it is replaced.
func (r *Registry) Register(ext string, searcher docfind.DocumentSearcher) {
	r.searchers[normalizeExt(ext)] = searcher
}

// Lookup returns the searcher registered for the extension of path.
func (r *Registry) Lookup(path string) (docfind.DocumentSearcher, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, false
	}
	s, ok := r.searchers[strings.ToLower(ext)]
	return s, ok
}

// Extensions returns all registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.searchers))
	for ext := range r.searchers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
