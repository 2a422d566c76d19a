// Package pdf searches PDF documents page by page.
package pdf

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/docfind"
	"github.com/ledongthuc/pdf"
)

// Extensions lists the file extensions handled by Searcher.
var Extensions = []string{".pdf"}

// Ensure Searcher implements docfind.DocumentSearcher.
var _ docfind.DocumentSearcher = (*Searcher)(nil)

// Searcher implements docfind.DocumentSearcher for PDF documents.
// Each page is a unit; matches carry the 1-based page number.
type Searcher struct{}

// NewSearcher creates a new Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Search scans every page of the document at path.
// Pages without extractable text are skipped.
func (s *Searcher) Search(ctx context.Context, path string, m *docfind.Matcher) (matches []*docfind.Match, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = docfind.Errorf(docfind.EUNREADABLE, "cannot parse %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, docfind.Errorf(docfind.EUNREADABLE, "cannot open %s: %v", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, docfind.Errorf(docfind.EUNREADABLE, "cannot stat %s: %v", path, err)
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return nil, docfind.Errorf(docfind.EUNREADABLE, "cannot parse %s: %v", path, err)
	}

	for n := 1; n <= r.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, ok := pageText(r.Page(n))
		if !ok {
			continue
		}
		excerpt, ok := m.Snippet(text)
		if !ok {
			continue
		}
		matches = append(matches, &docfind.Match{
			Path:    path,
			Page:    docfind.PageNumber(n),
			Excerpt: excerpt,
		})
	}

	return matches, nil
}

// pageText returns the plain text of p. Image-only pages, pages whose
// content cannot be interpreted, and text that is not valid UTF-8 report
// false.
func pageText(p pdf.Page) (string, bool) {
	if p.V.IsNull() {
		return "", false
	}
	text, err := p.GetPlainText(nil)
	if err != nil || text == "" || !utf8.ValidString(text) {
		return "", false
	}
	return text, true
}
