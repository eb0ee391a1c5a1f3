package mock

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func magnitude(v []float32) float64 {
	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}
	return math.Sqrt(sumSquares)
}

func TestMockEmbedderDefaults(t *testing.T) {
	ctx := context.Background()
	embedder := NewMockEmbedder()

	t.Run("deterministic per text", func(t *testing.T) {
		first, err := embedder.EmbedText(ctx, "a spy in Paris")
		require.NoError(t, err)
		second, err := embedder.EmbedText(ctx, "a spy in Paris")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("default vectors are unit length", func(t *testing.T) {
		vector, err := embedder.EmbedText(ctx, "a spy in Paris")
		require.NoError(t, err)
		require.Len(t, vector, 384)
		assert.InDelta(t, 1.0, magnitude(vector), 1e-5)
	})

	t.Run("batch vectors are unit length too", func(t *testing.T) {
		vectors, err := embedder.EmbedTexts(ctx, []string{"love in Paris", "a chase in New York"})
		require.NoError(t, err)
		require.Len(t, vectors, 2)
		for _, vector := range vectors {
			assert.InDelta(t, 1.0, magnitude(vector), 1e-5)
		}
	})

	t.Run("call count tracks usage", func(t *testing.T) {
		embedder.Reset()
		_, err := embedder.EmbedText(ctx, "one")
		require.NoError(t, err)
		_, err = embedder.EmbedTexts(ctx, []string{"two"})
		require.NoError(t, err)
		assert.Equal(t, 2, embedder.CallCount())
	})
}

func TestKeywordEmbedder(t *testing.T) {
	ctx := context.Background()
	embedder := NewKeywordEmbedder([]string{"spy", "paris", "love"})

	t.Run("counts vocabulary words by dimension", func(t *testing.T) {
		vector, err := embedder.EmbedText(ctx, "A spy loves another spy in Paris.")
		require.NoError(t, err)
		require.Len(t, vector, 3)
		// Two "spy" hits, one "paris" hit, "loves" is not "love"
		assert.Greater(t, vector[0], vector[1])
		assert.Equal(t, float32(0), vector[2])
		assert.InDelta(t, 1.0, magnitude(vector), 1e-5)
	})

	t.Run("no vocabulary overlap yields zero vector", func(t *testing.T) {
		vector, err := embedder.EmbedText(ctx, "underwater knitting documentary")
		require.NoError(t, err)
		assert.Equal(t, []float32{0, 0, 0}, vector)
	})
}
