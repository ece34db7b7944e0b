package llm

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/docqa/index"
)

func TestHashEmbedder(t *testing.T) {
	ctx := context.Background()
	emb := NewHashEmbedder(256)

	t.Run("deterministic", func(t *testing.T) {
		a, err := emb.EmbedText(ctx, "the quick brown fox")
		require.NoError(t, err)
		b, err := emb.EmbedText(ctx, "the quick brown fox")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("fixed dimension", func(t *testing.T) {
		v, err := emb.EmbedText(ctx, "anything at all")
		require.NoError(t, err)
		assert.Len(t, v, 256)
	})

	t.Run("unit norm", func(t *testing.T) {
		v, err := emb.EmbedText(ctx, "normalize me please")
		require.NoError(t, err)

		var norm float64
		for _, x := range v {
			norm += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
	})

	t.Run("empty text is the zero vector", func(t *testing.T) {
		v, err := emb.EmbedText(ctx, "")
		require.NoError(t, err)
		for _, x := range v {
			assert.Zero(t, x)
		}
	})

	t.Run("batch matches single", func(t *testing.T) {
		texts := []string{"first text", "second text"}
		batch, err := emb.EmbedTexts(ctx, texts)
		require.NoError(t, err)
		require.Len(t, batch, 2)

		for i, text := range texts {
			single, err := emb.EmbedText(ctx, text)
			require.NoError(t, err)
			assert.Equal(t, single, batch[i])
		}
	})

	t.Run("shared vocabulary scores higher", func(t *testing.T) {
		question, err := emb.EmbedText(ctx, "how long does confidentiality last")
		require.NoError(t, err)
		related, err := emb.EmbedText(ctx, "the confidentiality obligation shall last five years")
		require.NoError(t, err)
		unrelated, err := emb.EmbedText(ctx, "payment is due within thirty days of invoice")
		require.NoError(t, err)

		assert.Greater(t,
			index.Cosine.Score(question, related),
			index.Cosine.Score(question, unrelated))
	})
}
