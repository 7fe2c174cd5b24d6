package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	v := normalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)
}

func TestNormalizeVectorZero(t *testing.T) {
	v := normalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, v)

	assert.Empty(t, normalizeVector(nil))
}

func TestDotProduct(t *testing.T) {
	assert.InDelta(t, 1.0, dotProduct([]float32{1, 0}, []float32{1, 0}), 1e-6)
	assert.InDelta(t, 0.0, dotProduct([]float32{1, 0}, []float32{0, 1}), 1e-6)

	// Mismatched lengths use the shorter vector.
	assert.InDelta(t, 2.0, dotProduct([]float32{1, 1, 1}, []float32{1, 1}), 1e-6)
}
