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


// Package search ranks a movie corpus against natural-language queries.
//
// The Searcher embeds every plot with a sentence-embedding model on first
// use, embeds each incoming query with the same model, and scores the corpus
// by cosine similarity. Results come back sorted descending with ties broken
// by dataset order, so output is deterministic for an unchanged corpus.
//
// Initialization is guarded by a one-time-execution primitive: concurrent
// first calls embed the corpus exactly once, and the corpus is read-only
// afterward. There is no retry logic; embedder and data failures propagate
// to the caller as terminal errors for that call.
package search
