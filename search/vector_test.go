package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("unit length output", func(t *testing.T) {
		v := Normalize([]float32{3, 4})
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)

		var magnitude float64
		for _, val := range v {
			magnitude += float64(val) * float64(val)
		}
		assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := Normalize([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, Normalize([]float32{}))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []float32{3, 4}
		Normalize(in)
		assert.Equal(t, []float32{3, 4}, in)
	})
}

func TestDotProduct(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		assert.InDelta(t, 11.0, dotProduct([]float32{1, 2}, []float32{3, 4}), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, dotProduct([]float32{1, 0}, []float32{0, 1}), 1e-6)
	})

	t.Run("mismatched lengths use shorter", func(t *testing.T) {
		assert.InDelta(t, 3.0, dotProduct([]float32{1, 2, 5}, []float32{3}), 1e-6)
	})

	t.Run("nil vector scores zero", func(t *testing.T) {
		assert.Equal(t, float32(0), dotProduct([]float32{1, 2}, nil))
	})

	t.Run("identical unit vectors score one", func(t *testing.T) {
		v := Normalize([]float32{2, 3, 5})
		assert.InDelta(t, 1.0, dotProduct(v, v), 1e-6)
	})
}
