// Package docx searches Office Open XML word processing documents
// paragraph by paragraph.
package docx

import (
	"archive/zip"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/fwojciec/docfind"
)

// wordNamespace is the WordprocessingML main namespace.
const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentPart is the archive member holding the main document body.
const documentPart = "word/document.xml"

// Extensions lists the file extensions handled by Searcher.
var Extensions = []string{".docx"}

// Ensure Searcher implements docfind.DocumentSearcher.
var _ docfind.DocumentSearcher = (*Searcher)(nil)

// Searcher implements docfind.DocumentSearcher for DOCX documents.
// Each paragraph is a unit; matches never carry a page number.
type Searcher struct{}

// NewSearcher creates a new Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Search scans the body paragraphs of the document at path, including
// paragraphs in table cells, in document order.
func (s *Searcher) Search(ctx context.Context, path string, m *docfind.Matcher) ([]*docfind.Match, error) {
	paragraphs, err := ReadParagraphs(path)
	if err != nil {
		return nil, err
	}

	var matches []*docfind.Match
	for _, text := range paragraphs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if text == "" || !utf8.ValidString(text) {
			continue
		}
		excerpt, ok := m.Snippet(text)
		if !ok {
			continue
		}
		matches = append(matches, &docfind.Match{
			Path:    path,
			Excerpt: excerpt,
		})
	}

	return matches, nil
}

// ReadParagraphs returns the text of every paragraph in the document body.
// Returns EUNREADABLE if the file is not a DOCX archive or its document
// part cannot be parsed.
func ReadParagraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, docfind.Errorf(docfind.EUNREADABLE, "cannot open %s: %v", path, err)
	}
	defer zr.Close()

	doc, err := readDocumentPart(zr)
	if err != nil {
		return nil, docfind.Errorf(docfind.EUNREADABLE, "cannot parse %s: %v", path, err)
	}

	root := doc.Root()
	if root == nil || !isWord(root, "document") {
		return nil, docfind.Errorf(docfind.EUNREADABLE, "cannot parse %s: missing document element", path)
	}
	body := childElement(root, "body")
	if body == nil {
		return nil, docfind.Errorf(docfind.EUNREADABLE, "cannot parse %s: missing body element", path)
	}

	var paragraphs []string
	collectParagraphs(body, &paragraphs)
	return paragraphs, nil
}

func readDocumentPart(zr *zip.ReadCloser) (*etree.Document, error) {
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(rc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return nil, fmt.Errorf("missing %s", documentPart)
}

// collectParagraphs appends the text of every paragraph under el.
// Paragraphs nested in tables and content controls are visited in
// document order.
func collectParagraphs(el *etree.Element, out *[]string) {
	for _, child := range el.ChildElements() {
		if isWord(child, "p") {
			var b strings.Builder
			writeRunText(child, &b)
			*out = append(*out, b.String())
			continue
		}
		collectParagraphs(child, out)
	}
}

// writeRunText writes the visible text under el. Text boxes anchored in a
// paragraph are not part of its text.
func writeRunText(el *etree.Element, b *strings.Builder) {
	for _, child := range el.ChildElements() {
		if child.NamespaceURI() != wordNamespace {
			continue
		}
		switch child.Tag {
		case "t":
			b.WriteString(child.Text())
		case "tab":
			b.WriteByte('\t')
		case "br", "cr":
			b.WriteByte('\n')
		case "txbxContent":
			// anchored text box, not paragraph text
		default:
			writeRunText(child, b)
		}
	}
}

func isWord(el *etree.Element, tag string) bool {
	return el.Tag == tag && el.NamespaceURI() == wordNamespace
}

func childElement(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if isWord(child, tag) {
			return child
		}
	}
	return nil
}
