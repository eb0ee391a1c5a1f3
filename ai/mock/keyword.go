package mock

import (
	"context"
	"math"
	"strings"
)

// KeywordEmbedder is a test embedder that maps each vocabulary word to one
// vector dimension. A text's embedding counts how often each vocabulary word
// appears, normalized to unit length. Texts sharing more vocabulary words
// therefore get higher cosine similarity, which makes ranking behavior
// predictable in tests without a real model.
type KeywordEmbedder struct {
	vocabulary []string
	index      map[string]int
}

// NewKeywordEmbedder creates a keyword embedder over the given vocabulary.
// Words are matched case-insensitively with surrounding punctuation stripped.
func NewKeywordEmbedder(vocabulary []string) *KeywordEmbedder {
	index := make(map[string]int, len(vocabulary))
	for i, word := range vocabulary {
		index[strings.ToLower(word)] = i
	}
	return &KeywordEmbedder{
		vocabulary: vocabulary,
		index:      index,
	}
}

// EmbedText generates a bag-of-words vector for a single text.
func (k *KeywordEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return k.embed(text), nil
}

// EmbedTexts generates bag-of-words vectors for multiple texts.
func (k *KeywordEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = k.embed(text)
	}
	return vectors, nil
}

func (k *KeywordEmbedder) embed(text string) []float32 {
	vector := make([]float32, len(k.vocabulary))
	for _, word := range strings.Fields(text) {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if dim, ok := k.index[cleaned]; ok {
			vector[dim]++
		}
	}

	// Normalize to unit length; texts with no vocabulary words stay zero
	var sumSquares float32
	for _, v := range vector {
		sumSquares += v * v
	}
	if sumSquares > 0 {
		norm := float32(math.Sqrt(float64(sumSquares)))
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector
}
