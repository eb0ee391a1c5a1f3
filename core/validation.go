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

import (
	"fmt"
	"strings"
)

// ValidateQuery validates a search query according to domain rules.
//
// Validation rules:
//   - Query must contain at least one non-whitespace character
//
// The returned error wraps ErrInvalidInput so callers can classify it
// with errors.Is.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyQuery)
	}
	return nil
}

// ValidateTopN validates a requested result count.
//
// Validation rules:
//   - topN must be greater than zero
//
// Clamping to the corpus size is NOT done here; requests larger than the
// corpus are valid and are capped by the searcher.
func ValidateTopN(topN int) error {
	if topN <= 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidInput, ErrInvalidTopN, topN)
	}
	return nil
}
