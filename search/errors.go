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


package search

import "errors"

var (
	// ErrSourceRequired is returned when a movie source is not provided.
	ErrSourceRequired = errors.New("movie source required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrModelUnavailable indicates the embedding model failed to serve a
	// request. Every embedder failure wraps this error so callers can
	// classify it with errors.Is.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// ErrEmbeddingMismatch indicates the embedder returned a different
	// number of vectors than texts it was given.
	ErrEmbeddingMismatch = errors.New("embedder returned wrong number of vectors")
)
