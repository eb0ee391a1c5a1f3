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


// Package catalog loads the movie corpus that the search engine ranks.
//
// File reads a CSV dataset with title and plot columns; Static serves an
// in-memory corpus. Both satisfy the search.Source interface. Load failures
// wrap ErrDataUnavailable, forming the data half of the error taxonomy.
package catalog
