package retrieve

import (
	"sort"
	"strings"

	"github.com/ragforge/docqa"
)

// KeywordReranker rescores retrieved chunks with a keyword-overlap signal:
// the count of query term occurrences in the chunk, normalized by chunk
// length. The final score blends the vector score with the keyword score.
type KeywordReranker struct {
	// VectorWeight and KeywordWeight control the blend. Zero values fall
	// back to 0.7/0.3.
	VectorWeight  float64
	KeywordWeight float64
}

// NewKeywordReranker returns a reranker with the default 0.7/0.3 blend.
func NewKeywordReranker() *KeywordReranker {
	return &KeywordReranker{VectorWeight: 0.7, KeywordWeight: 0.3}
}

// Rerank blends each chunk's vector score with its keyword score and
// reorders descending. The input set's membership is preserved.
func (r *KeywordReranker) Rerank(query string, results []docqa.ScoredChunk) []docqa.ScoredChunk {
	vw, kw := r.VectorWeight, r.KeywordWeight
	if vw == 0 && kw == 0 {
		vw, kw = 0.7, 0.3
	}

	queryTerms := strings.Fields(strings.ToLower(query))

	rescored := make([]docqa.ScoredChunk, len(results))
	for i, sc := range results {
		content := strings.ToLower(sc.Chunk.Content)

		var keyword float64
		for _, term := range queryTerms {
			keyword += float64(strings.Count(content, term))
		}
		if len(content) > 0 {
			keyword = keyword / float64(len(content)) * 1000
		}

		rescored[i] = docqa.ScoredChunk{
			Chunk: sc.Chunk,
			Score: vw*sc.Score + kw*keyword,
		}
	}

	sort.SliceStable(rescored, func(i, j int) bool {
		return rescored[i].Score > rescored[j].Score
	})
	return rescored
}
