package docfind

import "context"

// DocumentSearcher extracts keyword matches from one document of a single
// container format. Implementations open the document, scan it unit by unit
// (pages or paragraphs) and release it before returning.
type DocumentSearcher interface {
	// Search returns the matches found in the document at path, in unit
	// order. Units with no extractable text are skipped.
	// Returns EUNREADABLE if the document cannot be opened or parsed.
	Search(ctx context.Context, path string, m *Matcher) ([]*Match, error)
}

// FormatRegistry maps file extensions to document searchers.
type FormatRegistry interface {
	// Register adds a searcher for ext (e.g. ".pdf"). Matching is
	// case-insensitive. An existing registration is replaced.
	Register(ext string, searcher DocumentSearcher)

	// Lookup returns the searcher for the extension of path.
	// Returns false if the extension is not registered.
	Lookup(path string) (DocumentSearcher, bool)

	// Extensions returns the registered extensions in sorted order.
	Extensions() []string
}
