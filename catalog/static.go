package catalog

import (
	"context"
	"slices"

	"github.com/poiesic/reelsearch/core"
)

// Static is an in-memory movie source. It is useful for tests and for
// callers that already hold their corpus in memory.
type Static struct {
	movies []core.Movie
}

// NewStatic creates a source over the given movies.
// The slice is copied so later mutation by the caller cannot change the catalog.
func NewStatic(movies []core.Movie) *Static {
	return &Static{movies: slices.Clone(movies)}
}

// Movies returns a copy of the catalog in its original order.
func (s *Static) Movies(ctx context.Context) ([]core.Movie, error) {
	return slices.Clone(s.movies), nil
}
