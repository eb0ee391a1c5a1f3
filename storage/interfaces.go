package storage

import (
	"context"

	"github.com/poiesic/reelsearch/core"
)

// VectorCache persists plot embeddings across process restarts so the
// embedding service is only called for text it has not seen before.
// Entries are keyed by the content ID of the embedded text, which makes the
// cache self-invalidating: edited plots hash to new keys.
// Implementations must be thread-safe and support concurrent access.
type VectorCache interface {
	// GetVector retrieves the cached embedding for a content ID.
	// Returns ErrNotFound if no entry exists.
	GetVector(ctx context.Context, id core.ID) ([]float32, error)

	// PutVector stores an embedding under a content ID, replacing any
	// existing entry.
	PutVector(ctx context.Context, id core.ID, vector []float32) error

	// Close closes the cache and releases resources.
	Close() error
}
