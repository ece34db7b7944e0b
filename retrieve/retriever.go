package retrieve

import (
	"context"

	"github.com/ragforge/docqa"
)

// DefaultK is the number of chunks retrieved when no K is configured.
const DefaultK = 4

// Retriever embeds questions and searches an index for the most similar
// chunks. It owns neither collaborator: the index and embedder are passed
// in and never mutated.
type Retriever struct {
	index    docqa.Index
	embedder docqa.Embedder
	k        int
	reranker Reranker
}

// Reranker rescores a retrieved set. Implementations must preserve the
// set's membership, only its order and scores may change.
type Reranker interface {
	Rerank(query string, results []docqa.ScoredChunk) []docqa.ScoredChunk
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithK sets how many chunks a retrieval returns. Defaults to 4.
func WithK(k int) RetrieverOption {
	return func(r *Retriever) { r.k = k }
}

// WithReranker adds a rescoring pass after the similarity search.
func WithReranker(rr Reranker) RetrieverOption {
	return func(r *Retriever) { r.reranker = rr }
}

// NewRetriever validates the collaborators and K.
func NewRetriever(index docqa.Index, embedder docqa.Embedder, opts ...RetrieverOption) (*Retriever, error) {
	if index == nil {
		return nil, docqa.NewConfigurationError("index", "must not be nil")
	}
	if embedder == nil {
		return nil, docqa.NewConfigurationError("embedder", "must not be nil")
	}

	r := &Retriever{index: index, embedder: embedder, k: DefaultK}
	for _, opt := range opts {
		opt(r)
	}
	if r.k <= 0 {
		return nil, docqa.NewConfigurationError("k", "must be positive")
	}
	return r, nil
}

// K returns the configured result count.
func (r *Retriever) K() int { return r.k }

// Retrieve embeds the question and returns up to K chunks ordered by
// descending similarity, ties by document order. An index with no entries
// returns ErrEmptyIndex; fewer than K entries return all of them.
func (r *Retriever) Retrieve(ctx context.Context, question string) ([]docqa.ScoredChunk, error) {
	query, err := r.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, docqa.WrapExternal("embedder", "embed query", err)
	}

	results, err := r.index.Search(ctx, query, r.k)
	if err != nil {
		return nil, err
	}

	if r.reranker != nil {
		results = r.reranker.Rerank(question, results)
	}
	return results, nil
}
