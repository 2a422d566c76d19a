package docfind

import (
	"strconv"
	"strings"
)

// Separators used by the one-line rendering of a Match.
const (
	pageSeparator    = " - Page "
	snippetSeparator = " - Snippet: "
)

// Match is one located occurrence of a keyword.
type Match struct {
	// Path is the document path as produced by the walk.
	Path string `json:"path"`

	// Page is the 1-based page number. Nil for formats without pages.
	Page *int `json:"page,omitempty"`

	// Excerpt is the text surrounding the first occurrence in the unit,
	// in its original casing.
	Excerpt string `json:"excerpt"`
}

// PageNumber returns a page locator for n.
func PageNumber(n int) *int {
	return &n
}

// HasPage reports whether the match carries a page locator.
func (m *Match) HasPage() bool {
	return m.Page != nil
}

// String renders the match as a single result line:
//
//	<path> - Page <n> - Snippet: <excerpt>
//	<path> - Snippet: <excerpt>
func (m *Match) String() string {
	var b strings.Builder
	b.WriteString(m.Path)
	if m.HasPage() {
		b.WriteString(pageSeparator)
		b.WriteString(strconv.Itoa(*m.Page))
	}
	b.WriteString(snippetSeparator)
	b.WriteString(m.Excerpt)
	return b.String()
}

// ParseMatch parses a line produced by Match.String.
func ParseMatch(line string) (*Match, error) {
	head, excerpt, ok := strings.Cut(line, snippetSeparator)
	if !ok {
		return nil, Errorf(EINVALID, "missing snippet separator in %q", line)
	}

	m := &Match{Path: head, Excerpt: excerpt}
	if i := strings.LastIndex(head, pageSeparator); i >= 0 {
		if n, err := strconv.Atoi(head[i+len(pageSeparator):]); err == nil && n > 0 {
			m.Path = head[:i]
			m.Page = PageNumber(n)
		}
	}
	if m.Path == "" {
		return nil, Errorf(EINVALID, "missing path in %q", line)
	}
	return m, nil
}
