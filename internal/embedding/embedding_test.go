package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_ParallelVectors(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 2, 3}, []float32{2, 4, 6}), 0.0001)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 0.0001)
}

func TestCosine_OppositeVectors(t *testing.T) {
	assert.InDelta(t, -1.0, Cosine([]float32{1, 1}, []float32{-1, -1}), 0.0001)
}

func TestCosine_KnownAngle(t *testing.T) {
	// 45 degrees between (1,0) and (1,1).
	assert.InDelta(t, 0.7071, Cosine([]float32{1, 0}, []float32{1, 1}), 0.0001)
}

func TestCosine_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 2}))
}
