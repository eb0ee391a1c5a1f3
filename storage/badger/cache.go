package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/reelsearch/core"
	"github.com/poiesic/reelsearch/storage"
)

// Key prefix for cached embedding vectors
const vectorPrefix = "plotvec"

// makeVectorKey generates a key for a cached vector by content ID.
func makeVectorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", vectorPrefix, id))
}

// Cache implements storage.VectorCache on BadgerDB.
type Cache struct {
	backend *Backend
}

var _ storage.VectorCache = (*Cache)(nil)

// OpenCache opens a vector cache at the specified path, creating the
// directory if needed. The cache owns the underlying backend; Close
// releases it.
func OpenCache(filePath string) (*Cache, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return &Cache{backend: backend}, nil
}

// NewCache creates a cache over an existing backend.
// The caller remains responsible for closing the backend.
func NewCache(backend *Backend) *Cache {
	return &Cache{backend: backend}
}

// GetVector retrieves the cached embedding for a content ID.
func (c *Cache) GetVector(ctx context.Context, id core.ID) ([]float32, error) {
	var vector []float32

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(id))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			vector, err = storage.UnmarshalVector(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return vector, nil
}

// PutVector stores an embedding under a content ID.
func (c *Cache) PutVector(ctx context.Context, id core.ID, vector []float32) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(makeVectorKey(id), storage.MarshalVector(vector))
	}, true)
}

// Close closes the underlying backend.
func (c *Cache) Close() error {
	return c.backend.Close()
}
