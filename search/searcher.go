package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/poiesic/reelsearch/ai"
	"github.com/poiesic/reelsearch/core"
	"github.com/poiesic/reelsearch/storage"
)

// DefaultTopN is the number of results returned when a caller has no
// preference of its own.
const DefaultTopN = 5

// Source supplies the movie corpus to search over.
type Source interface {
	// Movies returns the full corpus in dataset order.
	Movies(ctx context.Context) ([]core.Movie, error)
}

// Searcher ranks the movie corpus against free-text queries by cosine
// similarity of sentence embeddings.
//
// Initialization is lazy and happens exactly once: the first call to Search
// (or EnsureReady) loads the corpus and embeds every plot. After that the
// corpus and its embeddings are read-only, so concurrent searches need no
// locking.
type Searcher struct {
	source     Source
	embedder   ai.Embedder
	cache      storage.VectorCache // optional; nil disables persistent caching
	cacheSpace string              // embedding space label baked into cache keys
	logger     *slog.Logger

	initOnce sync.Once
	initErr  error
	movies   []core.Movie
	vectors  [][]float32 // unit-length plot embeddings, aligned with movies
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCache sets a persistent embedding cache consulted before the embedder.
// The space label identifies the embedding space (typically the model name)
// and is baked into every cache key, so entries written by one model are
// never served to another. A nil cache leaves caching disabled.
func WithCache(cache storage.VectorCache, space string) Option {
	return func(s *Searcher) error {
		s.cache = cache
		s.cacheSpace = space
		return nil
	}
}

// NewSearcher creates a new searcher over the given corpus source.
// The corpus is not loaded or embedded until the first search.
func NewSearcher(source Source, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		source:   source,
		embedder: embedder,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// EnsureReady loads the corpus and embeds every plot if that has not
// happened yet. It is called implicitly by Search; exposing it lets callers
// pay the startup cost at a time of their choosing.
//
// Initialization runs exactly once per Searcher, even under concurrent
// first calls. A failed initialization is terminal for this instance.
func (s *Searcher) EnsureReady(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.initialize(ctx)
	})
	return s.initErr
}

// Size returns the corpus size, triggering initialization if needed.
func (s *Searcher) Size(ctx context.Context) (int, error) {
	if err := s.EnsureReady(ctx); err != nil {
		return 0, err
	}
	return len(s.movies), nil
}

// Search ranks the corpus against the query and returns the topN best
// matches in descending similarity order. Ties keep dataset order, so
// repeated calls with the same arguments return identical results.
// A topN larger than the corpus returns the whole corpus.
func (s *Searcher) Search(ctx context.Context, query string, topN int) ([]core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, topN, nil)
}

// SearchWithMonitor is Search with observation hooks.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topN int, monitor SearchMonitor) ([]core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}
	if err := core.ValidateTopN(topN); err != nil {
		return nil, err
	}

	monitor.Start(query)

	if err := s.EnsureReady(ctx); err != nil {
		return nil, err
	}
	monitor.AfterInitialization(len(s.movies))

	// Embed the query in the same embedding space as the corpus
	queryVector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	queryVector = Normalize(queryVector)
	monitor.AfterQueryEmbedding(len(queryVector))

	// Score every movie; both sides are unit length so the dot product is
	// the cosine similarity, with zero-norm text scoring 0
	results := make([]core.SearchResult, len(s.movies))
	for i, movie := range s.movies {
		results[i] = core.SearchResult{
			Movie:      movie,
			Similarity: dotProduct(queryVector, s.vectors[i]),
		}
	}

	// Stable sort by similarity descending; ties keep dataset order
	slices.SortStableFunc(results, func(a, b core.SearchResult) int {
		if a.Similarity > b.Similarity {
			return -1
		}
		if a.Similarity < b.Similarity {
			return 1
		}
		return 0
	})

	if topN > len(results) {
		topN = len(results)
	}
	results = results[:topN]
	monitor.Finish(results)

	return results, nil
}

// initialize loads the corpus and builds the plot embedding matrix.
func (s *Searcher) initialize(ctx context.Context) error {
	movies, err := s.source.Movies(ctx)
	if err != nil {
		s.logger.Error("error loading movie corpus", "err", err)
		return err
	}

	vectors := make([][]float32, len(movies))

	// Gather plots that still need embedding; empty plots stay zero vectors
	// and cached plots are restored by content ID
	var missingIdx []int
	var missingTexts []string
	for i, movie := range movies {
		if movie.Plot == "" {
			continue
		}
		if s.cache != nil {
			vector, err := s.cache.GetVector(ctx, s.cacheKey(movie.Plot))
			if err == nil {
				vectors[i] = Normalize(vector)
				continue
			}
			if !errors.Is(err, storage.ErrNotFound) {
				s.logger.Warn("embedding cache read failed, re-embedding", "title", movie.Title, "err", err)
			}
		}
		missingIdx = append(missingIdx, i)
		missingTexts = append(missingTexts, movie.Plot)
	}

	if len(missingTexts) > 0 {
		embedded, err := s.embedder.EmbedTexts(ctx, missingTexts)
		if err != nil {
			s.logger.Error("error embedding movie plots", "count", len(missingTexts), "err", err)
			return fmt.Errorf("%w: %w", ErrModelUnavailable, err)
		}
		if len(embedded) != len(missingTexts) {
			return fmt.Errorf("%w: want %d, got %d", ErrEmbeddingMismatch, len(missingTexts), len(embedded))
		}

		for j, i := range missingIdx {
			if s.cache != nil {
				if err := s.cache.PutVector(ctx, s.cacheKey(movies[i].Plot), embedded[j]); err != nil {
					s.logger.Warn("embedding cache write failed", "title", movies[i].Title, "err", err)
				}
			}
			vectors[i] = Normalize(embedded[j])
		}
	}

	s.movies = movies
	s.vectors = vectors
	s.logger.Info("search engine initialized", "movies", len(movies), "embedded", len(missingTexts))
	return nil
}

// cacheKey derives the cache ID for a plot. The embedding space label is
// hashed together with the text so vectors from different models never
// collide on the same entry.
func (s *Searcher) cacheKey(plot string) core.ID {
	return core.IDFromContent(s.cacheSpace + "\x00" + plot)
}
