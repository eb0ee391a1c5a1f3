package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated from content using deterministic hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which lets the
// embedding cache recognize plot text it has already embedded.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Movie is a single entry in the searchable catalog.
// Movies are immutable once loaded from the dataset.
type Movie struct {
	Title string
	Plot  string // may be empty when the dataset row has no plot
}

// SearchResult is a ranked movie match with its relevance score.
type SearchResult struct {
	Movie      Movie
	Similarity float32
}
