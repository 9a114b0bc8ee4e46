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

// MinQueryLength is the minimum number of non-whitespace characters a query
// must contain to reach the recommendation engine.
const MinQueryLength = 3

// ValidateQuery validates a free-text query before it reaches the engine.
//
// Validation rules:
//   - at least MinQueryLength non-whitespace characters
func ValidateQuery(query string) error {
	stripped := strings.Join(strings.Fields(query), "")
	if len(stripped) < MinQueryLength {
		return ErrQueryTooShort
	}
	return nil
}

// ValidateAssessment validates an Assessment according to domain rules.
//
// Validation rules:
//   - URL must not be empty (it is the unique identifier)
//   - Name must not be empty
//   - Duration must be positive
//
// NOT validated:
//   - Category (open value set on the wire; unknown values rank as "other")
//   - TestType (normalized at ingestion, may be empty)
func ValidateAssessment(a *Assessment) error {
	if a == nil {
		return fmt.Errorf("%w: assessment is nil", ErrInvalidAssessment)
	}

	if a.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyURL)
	}

	if a.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyName)
	}

	if a.Duration <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrInvalidDuration)
	}

	return nil
}
