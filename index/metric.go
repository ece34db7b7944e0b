package index

import "math"

// Metric selects the similarity function used to score candidates against
// a query vector. Scores are always ordered descending, so L2 distance is
// mapped into a similarity.
type Metric int

const (
	// Cosine scores by cosine similarity. The default.
	Cosine Metric = iota

	// L2 scores by euclidean proximity: 1/(1+distance), so closer
	// vectors score higher.
	L2
)

func (m Metric) String() string {
	switch m {
	case Cosine:
		return "cosine"
	case L2:
		return "l2"
	default:
		return "unknown"
	}
}

// Score computes the similarity of two equal-dimension vectors.
func (m Metric) Score(a, b []float32) float64 {
	switch m {
	case L2:
		return l2Similarity(a, b)
	default:
		return cosineSimilarity(a, b)
	}
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func l2Similarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return 1 / (1 + math.Sqrt(sum))
}
