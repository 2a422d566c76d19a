package fs_test

import (
	"testing"

	"github.com/fwojciec/docfind/fs"
	"github.com/fwojciec/docfind/mock"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("looks up searcher by case-insensitive extension", func(t *testing.T) {
		t.Parallel()

		r := fs.NewRegistry()
		s := &mock.DocumentSearcher{}
		r.Register(".pdf", s)

		got, ok := r.Lookup("/docs/REPORT.PDF")

		assert.True(t, ok)
		assert.Same(t, s, got)
	})

	t.Run("normalizes registered extension", func(t *testing.T) {
		t.Parallel()

		r := fs.NewRegistry()
		r.Register("DOCX", &mock.DocumentSearcher{})

		_, ok := r.Lookup("notes.docx")

		assert.True(t, ok)
		assert.Equal(t, []string{".docx"}, r.Extensions())
	})

	t.Run("misses unknown and missing extensions", func(t *testing.T) {
		t.Parallel()

		r := fs.NewRegistry()
		r.Register(".pdf", &mock.DocumentSearcher{})

		_, ok := r.Lookup("notes.txt")
		assert.False(t, ok)

		_, ok = r.Lookup("Makefile")
		assert.False(t, ok)
	})

	t.Run("replaces existing registration", func(t *testing.T) {
		t.Parallel()

		r := fs.NewRegistry()
		first := &mock.DocumentSearcher{}
		second := &mock.DocumentSearcher{}
		r.Register(".pdf", first)
		r.Register(".pdf", second)

		got, _ := r.Lookup("a.pdf")

		assert.Same(t, second, got)
		assert.Len(t, r.Extensions(), 1)
	})

	t.Run("lists extensions sorted", func(t *testing.T) {
		t.Parallel()

		r := fs.NewRegistry()
		r.Register(".pdf", &mock.DocumentSearcher{})
		r.Register(".docx", &mock.DocumentSearcher{})

		assert.Equal(t, []string{".docx", ".pdf"}, r.Extensions())
	})
}
