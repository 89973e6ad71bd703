// Package embedding abstracts sentence-embedding models behind a small
// interface so the scoring engine stays model-agnostic. The production
// implementation is Gemini; tests inject fixed-vector stubs.
package embedding

import (
	"context"
	"math"
)

// Embedder encodes text into a fixed-size dense vector. Implementations
// must be safe for concurrent use: the engine shares one Embedder across
// invocations and never mutates it after construction.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}

// Cosine computes the cosine similarity of two vectors. Mismatched or empty
// vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
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
