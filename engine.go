// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package reelsearch ranks movie plot summaries against natural-language
// queries using sentence embeddings and cosine similarity.
//
// The Engine facade wires together a CSV movie catalog, an
// OpenAI-compatible embedding service, and an optional persistent embedding
// cache. Model loading and corpus embedding happen lazily on the first
// search and exactly once per Engine.
package reelsearch

import (
	"context"
	"log/slog"

	"github.com/poiesic/reelsearch/ai"
	"github.com/poiesic/reelsearch/ai/openai"
	"github.com/poiesic/reelsearch/catalog"
	"github.com/poiesic/reelsearch/core"
	"github.com/poiesic/reelsearch/search"
	"github.com/poiesic/reelsearch/storage"
	"github.com/poiesic/reelsearch/storage/badger"
)

// Engine is the top-level search engine over a movie dataset.
type Engine struct {
	searcher *search.Searcher
	cache    storage.VectorCache
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
	cacheDir string
	logger   *slog.Logger
}

// WithAIConfig sets the embedding service configuration.
// Ignored when WithEmbedder is also given.
func WithAIConfig(cfg *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithEmbedder injects a custom embedder instead of the default
// OpenAI-compatible client. Intended for tests and alternate backends.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithCacheDir enables the persistent embedding cache at the given directory.
// An empty path leaves caching disabled.
func WithCacheDir(path string) EngineOption {
	return func(o *engineOptions) {
		o.cacheDir = path
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine creates a search engine over the CSV dataset at dataPath.
// The dataset is not read and nothing is embedded until the first search
// (or an explicit Warm call).
func NewEngine(dataPath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	embedder := options.embedder
	if embedder == nil {
		var err error
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	var cache storage.VectorCache
	if options.cacheDir != "" {
		var err error
		cache, err = badger.OpenCache(options.cacheDir)
		if err != nil {
			return nil, err
		}
	}

	source := catalog.NewFile(dataPath, catalog.WithLogger(options.logger))
	searcher, err := search.NewSearcher(
		source,
		embedder,
		// Cache keys carry the model name so switching models on a reused
		// cache directory re-embeds instead of mixing embedding spaces
		search.WithCache(cache, options.aiConfig.EmbeddingModel),
		search.WithLogger(options.logger),
	)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		return nil, err
	}

	return &Engine{
		searcher: searcher,
		cache:    cache,
		logger:   options.logger,
	}, nil
}

// Search ranks the corpus against the query and returns the topN best
// matches, best first. Use search.DefaultTopN when in doubt.
func (e *Engine) Search(ctx context.Context, query string, topN int) ([]core.SearchResult, error) {
	return e.searcher.Search(ctx, query, topN)
}

// SearchWithMonitor is Search with observation hooks.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, topN int, monitor search.SearchMonitor) ([]core.SearchResult, error) {
	return e.searcher.SearchWithMonitor(ctx, query, topN, monitor)
}

// Warm eagerly loads the dataset and embeds the corpus so the first search
// does not pay the startup cost.
func (e *Engine) Warm(ctx context.Context) error {
	return e.searcher.EnsureReady(ctx)
}

// Size returns the corpus size, triggering initialization if needed.
func (e *Engine) Size(ctx context.Context) (int, error) {
	return e.searcher.Size(ctx)
}

// Close releases the embedding cache, if one is open.
func (e *Engine) Close() error {
	if e.cache == nil {
		return nil
	}
	if err := e.cache.Close(); err != nil {
		e.logger.Error("error closing embedding cache", "err", err)
		return err
	}
	return nil
}
