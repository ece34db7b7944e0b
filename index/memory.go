package index

import (
	"context"
	"sort"

	"github.com/ragforge/docqa"
)

// Option configures an index at build time.
type Option func(*options)

type options struct {
	metric Metric
}

// WithMetric selects the similarity metric. Cosine is the default.
func WithMetric(m Metric) Option {
	return func(o *options) { o.metric = m }
}

func applyOptions(opts []Option) options {
	o := options{metric: Cosine}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type entry struct {
	chunk  docqa.Chunk
	vector []float32
}

// Memory is an exact brute-force vector index held in process memory.
// It is built once from chunk/vector pairs and never mutated; rebuilding
// replaces it.
type Memory struct {
	entries []entry
	dim     int
	metric  Metric
}

// BuildMemory constructs an in-memory index from parallel chunk and
// vector slices. The slices must have equal length and every vector must
// share one dimension; a deviating vector fails the build with a
// DimensionMismatchError.
func BuildMemory(chunks []docqa.Chunk, vectors [][]float32, opts ...Option) (*Memory, error) {
	o := applyOptions(opts)

	entries, dim, err := buildEntries(chunks, vectors)
	if err != nil {
		return nil, err
	}
	return &Memory{entries: entries, dim: dim, metric: o.metric}, nil
}

func buildEntries(chunks []docqa.Chunk, vectors [][]float32) ([]entry, int, error) {
	if len(chunks) != len(vectors) {
		return nil, 0, docqa.NewConfigurationError("vectors", "must match chunks in length")
	}

	entries := make([]entry, 0, len(chunks))
	dim := 0
	for i, ck := range chunks {
		v := vectors[i]
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return nil, 0, &docqa.DimensionMismatchError{Want: dim, Got: len(v)}
		}
		entries = append(entries, entry{chunk: ck, vector: v})
	}
	return entries, dim, nil
}

// Len reports the number of indexed chunks.
func (m *Memory) Len() int { return len(m.entries) }

// Dimension reports the vector dimension, or 0 for an empty index.
func (m *Memory) Dimension() int { return m.dim }

// Metric reports the similarity metric the index scores with.
func (m *Memory) Metric() Metric { return m.metric }

// Search scores every entry against the query and returns the top k,
// ordered by descending score with ties resolved by chunk position.
func (m *Memory) Search(ctx context.Context, query []float32, k int) ([]docqa.ScoredChunk, error) {
	return rank(m.entries, m.metric, m.dim, query, k)
}

// rank is the shared scoring path for every backend: exact brute-force
// scoring, stable descending sort, top-k cut.
func rank(entries []entry, metric Metric, dim int, query []float32, k int) ([]docqa.ScoredChunk, error) {
	if k <= 0 {
		return nil, docqa.NewConfigurationError("k", "must be positive")
	}
	if len(entries) == 0 {
		return nil, docqa.ErrEmptyIndex
	}
	if len(query) != dim {
		return nil, &docqa.DimensionMismatchError{Want: dim, Got: len(query)}
	}

	scored := make([]docqa.ScoredChunk, len(entries))
	for i, e := range entries {
		scored[i] = docqa.ScoredChunk{
			Chunk: e.chunk,
			Score: metric.Score(query, e.vector),
		}
	}

	// Stable sort keeps equal scores in entry order, which is document
	// order for an index built from sequential chunks.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}
