package llm

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// HashEmbedder is a deterministic, offline embedder: each word hashes into
// a bucket of the vector, so texts sharing vocabulary land near each other
// under cosine similarity. It needs no network and always produces the
// same vector for the same text, which makes retrieval reproducible in
// tests and demos.
type HashEmbedder struct {
	Dimension int
}

// NewHashEmbedder creates a hashed bag-of-words embedder. Dimensions of a
// few hundred keep unrelated words from colliding too often.
func NewHashEmbedder(dimension int) *HashEmbedder {
	return &HashEmbedder{Dimension: dimension}
}

// EmbedText embeds a single text.
func (e *HashEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return e.embed(text), nil
}

// EmbedTexts embeds a batch of texts.
func (e *HashEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = e.embed(text)
	}
	return vectors, nil
}

func (e *HashEmbedder) embed(text string) []float32 {
	vector := make([]float32, e.Dimension)

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		vector[int(h.Sum32())%e.Dimension]++
	}

	// Normalize so cosine similarity reflects vocabulary overlap rather
	// than text length.
	var norm float64
	for _, v := range vector {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := 1 / math.Sqrt(norm)
		for i := range vector {
			vector[i] = float32(float64(vector[i]) * inv)
		}
	}
	return vector
}
