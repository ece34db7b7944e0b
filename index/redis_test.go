package index

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/docqa"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return NewRedisClient(RedisOptions{Addr: mr.Addr()})
}

func TestRedisIndex(t *testing.T) {
	ctx := context.Background()
	client := newTestRedis(t)

	t.Run("build and search", func(t *testing.T) {
		idx, err := BuildRedis(ctx, client, "docs", testChunks(), testVectors())
		require.NoError(t, err)
		assert.Equal(t, 3, idx.Len())
		assert.Equal(t, 3, idx.Dimension())

		results, err := idx.Search(ctx, []float32{0.9, 0.4, 0.1}, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "alpha", results[0].Chunk.Content)
		assert.Equal(t, "bravo", results[1].Chunk.Content)
	})

	t.Run("reopen returns the same entries", func(t *testing.T) {
		built, err := BuildRedis(ctx, client, "reopen", testChunks(), testVectors())
		require.NoError(t, err)

		opened, err := OpenRedis(ctx, client, "reopen")
		require.NoError(t, err)
		assert.Equal(t, built.Len(), opened.Len())
		assert.Equal(t, built.Dimension(), opened.Dimension())

		query := []float32{0.2, 0.9, 0.3}
		want, err := built.Search(ctx, query, 3)
		require.NoError(t, err)
		got, err := opened.Search(ctx, query, 3)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rebuild replaces entries", func(t *testing.T) {
		_, err := BuildRedis(ctx, client, "docs", testChunks(), testVectors())
		require.NoError(t, err)

		idx, err := BuildRedis(ctx, client, "docs", testChunks()[:1], testVectors()[:1])
		require.NoError(t, err)
		assert.Equal(t, 1, idx.Len())

		opened, err := OpenRedis(ctx, client, "docs")
		require.NoError(t, err)
		assert.Equal(t, 1, opened.Len())
	})

	t.Run("open missing index is empty", func(t *testing.T) {
		idx, err := OpenRedis(ctx, client, "never-built")
		require.NoError(t, err)
		assert.Equal(t, 0, idx.Len())

		_, err = idx.Search(ctx, []float32{1, 0, 0}, 4)
		assert.ErrorIs(t, err, docqa.ErrEmptyIndex)
	})

	t.Run("build rejects dimension mismatch", func(t *testing.T) {
		vectors := testVectors()
		vectors[1] = []float32{1}
		_, err := BuildRedis(ctx, client, "bad", testChunks(), vectors)
		var dimErr *docqa.DimensionMismatchError
		assert.ErrorAs(t, err, &dimErr)
	})

	t.Run("drop empties the index", func(t *testing.T) {
		idx, err := BuildRedis(ctx, client, "dropme", testChunks(), testVectors())
		require.NoError(t, err)
		require.NoError(t, idx.Drop(ctx))
		assert.Equal(t, 0, idx.Len())

		opened, err := OpenRedis(ctx, client, "dropme")
		require.NoError(t, err)
		assert.Equal(t, 0, opened.Len())
	})
}
