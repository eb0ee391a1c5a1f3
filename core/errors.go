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


package core

import "errors"

// Input validation errors
var (
	// ErrInvalidInput indicates a search argument failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates the query is empty or whitespace only.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidTopN indicates a non-positive result count was requested.
	ErrInvalidTopN = errors.New("top-n must be a positive integer")
)
