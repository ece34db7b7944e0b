package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/docqa"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleAnswer() docqa.Answer {
	return docqa.Answer{
		Text: "Five years from disclosure.",
		Sources: []docqa.ScoredChunk{
			{Chunk: docqa.Chunk{DocumentID: "nda", Content: "...", Pos: 2}, Score: 0.91},
			{Chunk: docqa.Chunk{DocumentID: "nda", Content: "...", Pos: 3}, Score: 0.74},
		},
	}
}

func TestRecordAndHistory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	entry, err := store.Record(ctx, "sess-1", "How long does confidentiality last?", sampleAnswer())
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "sess-1", entry.SessionID)

	history, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, history, 1)

	got := history[0]
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "How long does confidentiality last?", got.Question)
	assert.Equal(t, "Five years from disclosure.", got.Answer)
	require.Len(t, got.Sources, 2)
	assert.Equal(t, "nda", got.Sources[0].DocumentID)
	assert.Equal(t, 2, got.Sources[0].Pos)
	assert.InDelta(t, 0.91, got.Sources[0].Score, 1e-9)
}

func TestHistoryOrdering(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, q := range []string{"first", "second", "third"} {
		_, err := store.Record(ctx, "sess-1", q, docqa.Answer{Text: "a"})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	history, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Question)
	assert.Equal(t, "third", history[2].Question)
}

func TestHistoryIsScopedBySession(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Record(ctx, "sess-a", "question a", docqa.Answer{Text: "x"})
	require.NoError(t, err)
	_, err = store.Record(ctx, "sess-b", "question b", docqa.Answer{Text: "y"})
	require.NoError(t, err)

	history, err := store.History(ctx, "sess-a")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "question a", history[0].Question)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Record(ctx, "sess-1", "q", docqa.Answer{Text: "a"})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "sess-1"))

	history, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEmptyHistory(t *testing.T) {
	store := newTestStore(t)
	history, err := store.History(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, history)
}
