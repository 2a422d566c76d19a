package lru_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docfind"
	"github.com/fwojciec/docfind/lru"
	"github.com/fwojciec/docfind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFind(c *mock.ResultCache, n *int) {
	find := c.FindResultsFn
	c.FindResultsFn = func(ctx context.Context, key string) ([]*docfind.Match, bool, error) {
		*n++
		return find(ctx, key)
	}
}

func TestResultCache_FindResults(t *testing.T) {
	t.Parallel()

	t.Run("serves repeated lookups from memory", func(t *testing.T) {
		t.Parallel()

		next := mock.MapCache()
		stored := []*docfind.Match{{Path: "/a.pdf", Page: docfind.PageNumber(1), Excerpt: "alpha"}}
		require.NoError(t, next.SaveResults(context.Background(), "alpha", stored))
		var lookups int
		countingFind(next, &lookups)
		c := lru.NewResultCache(next, 10)

		for i := 0; i < 3; i++ {
			got, ok, err := c.FindResults(context.Background(), "alpha")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, stored, got)
		}
		assert.Equal(t, 1, lookups)
	})

	t.Run("does not remember misses", func(t *testing.T) {
		t.Parallel()

		next := mock.MapCache()
		var lookups int
		countingFind(next, &lookups)
		c := lru.NewResultCache(next, 10)

		_, ok, err := c.FindResults(context.Background(), "alpha")
		require.NoError(t, err)
		assert.False(t, ok)
		_, _, err = c.FindResults(context.Background(), "alpha")
		require.NoError(t, err)

		assert.Equal(t, 2, lookups)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()

		c := lru.NewResultCache(&mock.ResultCache{
			FindResultsFn: func(_ context.Context, _ string) ([]*docfind.Match, bool, error) {
				return nil, false, docfind.Errorf(docfind.EUNAVAILABLE, "store down")
			},
		}, 10)

		_, _, err := c.FindResults(context.Background(), "alpha")

		assert.Equal(t, docfind.EUNAVAILABLE, docfind.ErrorCode(err))
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()

		next := mock.MapCache()
		c := lru.NewResultCache(next, 2)
		for _, k := range []string{"a", "b", "c"} {
			require.NoError(t, c.SaveResults(context.Background(), k, []*docfind.Match{}))
		}

		assert.Equal(t, 2, c.Len())
	})
}

func TestResultCache_SaveResults(t *testing.T) {
	t.Parallel()

	t.Run("writes through to next", func(t *testing.T) {
		t.Parallel()

		next := mock.MapCache()
		c := lru.NewResultCache(next, 10)
		matches := []*docfind.Match{{Path: "/a.docx", Excerpt: "alpha"}}

		require.NoError(t, c.SaveResults(context.Background(), "alpha", matches))

		got, ok, err := next.FindResults(context.Background(), "alpha")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, matches, got)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("keeps memory empty when next fails", func(t *testing.T) {
		t.Parallel()

		c := lru.NewResultCache(&mock.ResultCache{
			SaveResultsFn: func(_ context.Context, _ string, _ []*docfind.Match) error {
				return docfind.Errorf(docfind.EUNAVAILABLE, "disk full")
			},
		}, 10)

		err := c.SaveResults(context.Background(), "alpha", []*docfind.Match{})

		assert.Equal(t, docfind.EUNAVAILABLE, docfind.ErrorCode(err))
		assert.Equal(t, 0, c.Len())
	})
}

func TestResultCache_DeleteResults(t *testing.T) {
	t.Parallel()

	next := mock.MapCache()
	c := lru.NewResultCache(next, 10)
	require.NoError(t, c.SaveResults(context.Background(), "alpha", []*docfind.Match{}))

	require.NoError(t, c.DeleteResults(context.Background(), "alpha"))

	_, ok, err := c.FindResults(context.Background(), "alpha")
	require.NoError(t, err)
	assert.False(t, ok)

	err = c.DeleteResults(context.Background(), "alpha")
	assert.Equal(t, docfind.ENOTFOUND, docfind.ErrorCode(err))
}

func TestResultCache_ListEntries(t *testing.T) {
	t.Parallel()

	next := mock.MapCache()
	c := lru.NewResultCache(next, 10)
	require.NoError(t, c.SaveResults(context.Background(), "alpha", []*docfind.Match{{Path: "/a.pdf"}}))

	entries, err := c.ListEntries(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alpha", entries[0].Key)
	assert.Equal(t, 1, entries[0].Count)
}
