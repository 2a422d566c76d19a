package main_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/docfind"
	main "github.com/fwojciec/docfind/cmd/docfind"
	"github.com/fwojciec/docfind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("searches each non-blank line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var keywords []string
		svc := &mock.SearchService{
			SearchFn: func(_ context.Context, gotDir, keyword string) ([]*docfind.Match, error) {
				assert.Equal(t, dir, gotDir)
				keywords = append(keywords, keyword)
				if keyword == "alpha" {
					return []*docfind.Match{{Path: "/docs/a.pdf", Page: docfind.PageNumber(1), Excerpt: "alpha"}}, nil
				}
				return []*docfind.Match{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("alpha\n  \n beta \nalpha"),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Search: svc,
		}

		err := (&main.InteractiveCmd{Dir: dir}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "alpha"}, keywords)
		assert.Equal(t,
			"/docs/a.pdf - Page 1 - Snippet: alpha\n"+
				"No files found with the keyword.\n"+
				"/docs/a.pdf - Page 1 - Snippet: alpha\n",
			stdout.String())
	})

	t.Run("stops on store errors", func(t *testing.T) {
		t.Parallel()

		var calls int
		svc := &mock.SearchService{
			SearchFn: func(_ context.Context, _, _ string) ([]*docfind.Match, error) {
				calls++
				return nil, docfind.Errorf(docfind.EUNAVAILABLE, "store down")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("alpha\nbeta\n"),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Search: svc,
		}

		err := (&main.InteractiveCmd{Dir: t.TempDir()}).Run(deps)

		assert.Equal(t, docfind.EUNAVAILABLE, docfind.ErrorCode(err))
		assert.Equal(t, 1, calls)
		assert.Contains(t, stderr.String(), "error: store down")
	})

	t.Run("returns when context is canceled while waiting for input", func(t *testing.T) {
		t.Parallel()

		r, w := io.Pipe()
		t.Cleanup(func() { _ = w.Close() })
		ctx, cancel := context.WithCancel(context.Background())
		deps := &main.Dependencies{
			Ctx:    ctx,
			Stdin:  r,
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Search: &mock.SearchService{},
		}

		cmd := &main.InteractiveCmd{Dir: t.TempDir()}
		done := make(chan error, 1)
		go func() { done <- cmd.Run(deps) }()
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("interactive session did not stop")
		}
	})
}
