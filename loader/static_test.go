package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/docqa"
)

func TestStaticLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the given documents", func(t *testing.T) {
		l := NewStatic(
			docqa.Document{ID: "a", Content: "first"},
			docqa.Document{ID: "b", Content: "second"},
		)

		docs, err := l.Load(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a", docs[0].ID)
		assert.Equal(t, "second", docs[1].Content)
	})

	t.Run("assigns missing ids", func(t *testing.T) {
		l := NewStatic(docqa.Document{Content: "no id"})

		docs, err := l.Load(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.NotEmpty(t, docs[0].ID)
	})

	t.Run("empty loader", func(t *testing.T) {
		docs, err := NewStatic().Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}
