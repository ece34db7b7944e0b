package docqa

import "context"

// Document is a source text handed to the pipeline. It is treated as
// immutable once ingested: chunking and indexing never modify it.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]string
}

// Chunk is a contiguous window of a document's text.
//
// Start is the rune offset of the window within the source document and
// Pos is the ordinal position of the chunk in document order. Pos is the
// tie-breaker for equal similarity scores.
type Chunk struct {
	DocumentID string
	Content    string
	Start      int
	Pos        int
}

// ScoredChunk pairs a chunk with its similarity score for a query.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// Answer is the result of a question against the indexed documents,
// together with the chunks that grounded it, in retrieval order.
type Answer struct {
	Text    string
	Sources []ScoredChunk
}

// Embedder converts text into fixed-dimension vectors through an external
// embedding service. All vectors produced by one embedder must share a
// dimension.
type Embedder interface {
	// EmbedText embeds a single text.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts embeds a batch of texts, one vector per input, in order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces a completion for a rendered prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// DocumentLoader yields documents from some source: a literal string, a
// file, a web page.
type DocumentLoader interface {
	Load(ctx context.Context) ([]Document, error)
}

// Index is a searchable collection of embedded chunks. Implementations are
// built wholesale from chunk/vector pairs; there is no incremental update
// or delete. When the document set changes the index is rebuilt.
type Index interface {
	// Search returns the k entries most similar to the query vector,
	// ordered by descending score with ties broken by chunk position.
	// Searching an index with no entries returns ErrEmptyIndex.
	Search(ctx context.Context, query []float32, k int) ([]ScoredChunk, error)

	// Len reports the number of indexed chunks.
	Len() int

	// Dimension reports the vector dimension, or 0 for an empty index.
	Dimension() int
}
