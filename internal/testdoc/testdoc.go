// Package testdoc builds small PDF and DOCX documents for tests.
package testdoc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// PDF returns a PDF document with one page per element of pages. Each page
// shows its text in a single line using Helvetica. An empty string produces
// a page without text.
func PDF(pages ...string) []byte {
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled in below
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	kids := make([]string, 0, len(pages))
	for _, text := range pages {
		pageObj := len(objs) + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageObj))

		var content string
		if text != "" {
			content = "BT /F1 12 Tf 72 720 Td (" + escapePDFString(text) + ") Tj ET"
		}
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", pageObj+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objs[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, obj := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objs)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	return b.Bytes()
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// DocumentXML returns a word/document.xml body with one paragraph per
// element of paragraphs. Tab characters become w:tab elements.
func DocumentXML(paragraphs ...string) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNamespace)
	body := root.CreateElement("w:body")
	for _, p := range paragraphs {
		appendParagraph(body, p)
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		panic(err)
	}
	return out
}

// DocumentXMLWithTable returns a document body with paragraphs before a
// single-row table whose cells hold cells, followed by paragraphs after.
func DocumentXMLWithTable(before []string, cells []string, after []string) []byte {
	doc := etree.NewDocument()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNamespace)
	body := root.CreateElement("w:body")
	for _, p := range before {
		appendParagraph(body, p)
	}
	row := body.CreateElement("w:tbl").CreateElement("w:tr")
	for _, c := range cells {
		appendParagraph(row.CreateElement("w:tc"), c)
	}
	for _, p := range after {
		appendParagraph(body, p)
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		panic(err)
	}
	return out
}

func appendParagraph(parent *etree.Element, text string) {
	p := parent.CreateElement("w:p")
	for i, part := range strings.Split(text, "\t") {
		r := p.CreateElement("w:r")
		if i > 0 {
			r.CreateElement("w:tab")
		}
		if part == "" {
			continue
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(part)
	}
}

// DOCX returns a DOCX archive whose word/document.xml is documentXML.
// A nil documentXML leaves the part out.
func DOCX(documentXML []byte) []byte {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	files := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)},
		{"word/document.xml", documentXML},
	}
	for _, f := range files {
		if f.data == nil {
			continue
		}
		w, err := zw.Create(f.name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write(f.data); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return b.Bytes()
}

// WriteFile writes data to name under dir, creating parent directories,
// and returns the full path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
