package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docfind"
	main "github.com/fwojciec/docfind/cmd/docfind"
	"github.com/fwojciec/docfind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per match", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var gotDir, gotKeyword string
		svc := &mock.SearchService{
			SearchFn: func(_ context.Context, dir, keyword string) ([]*docfind.Match, error) {
				gotDir, gotKeyword = dir, keyword
				return []*docfind.Match{
					{Path: "/docs/report.pdf", Page: docfind.PageNumber(2), Excerpt: "revenue grew"},
					{Path: "/docs/memo.docx", Excerpt: "Revenue targets"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Search: svc,
		}

		cmd := &main.SearchCmd{Dir: dir, Keyword: "revenue"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, dir, gotDir)
		assert.Equal(t, "revenue", gotKeyword)
		assert.Equal(t,
			"/docs/report.pdf - Page 2 - Snippet: revenue grew\n"+
				"/docs/memo.docx - Snippet: Revenue targets\n",
			stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("prints message when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SearchService{
			SearchFn: func(_ context.Context, _, _ string) ([]*docfind.Match, error) {
				return []*docfind.Match{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Search: svc,
		}

		cmd := &main.SearchCmd{Dir: t.TempDir(), Keyword: "absent"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No files found with the keyword.\n", stdout.String())
	})

	t.Run("warns about missing directory", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SearchService{
			SearchFn: func(_ context.Context, _, _ string) ([]*docfind.Match, error) {
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Search: svc,
		}

		cmd := &main.SearchCmd{Dir: "/nonexistent/docfind/dir", Keyword: "alpha"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "does not exist")
	})

	t.Run("reports service errors", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SearchService{
			SearchFn: func(_ context.Context, _, _ string) ([]*docfind.Match, error) {
				return nil, docfind.Errorf(docfind.EUNAVAILABLE, "cache store unavailable")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Search: svc,
		}

		cmd := &main.SearchCmd{Dir: t.TempDir(), Keyword: "alpha"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docfind.EUNAVAILABLE, docfind.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: cache store unavailable")
		assert.Empty(t, stdout.String())
	})
}
