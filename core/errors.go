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

// Domain validation errors
var (
	// ErrInvalidAssessment indicates an Assessment failed validation.
	ErrInvalidAssessment = errors.New("invalid assessment")

	// ErrEmptyURL indicates the URL field is empty.
	ErrEmptyURL = errors.New("assessment url cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("assessment name cannot be empty")

	// ErrInvalidDuration indicates a non-positive Duration value.
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrInvalidTestType indicates a test_type value that is neither a
	// list of strings nor a pipe-delimited string.
	ErrInvalidTestType = errors.New("invalid test_type representation")

	// ErrQueryTooShort indicates a query with fewer than the minimum
	// number of non-whitespace characters.
	ErrQueryTooShort = errors.New("query must be at least 3 characters long")

	// ErrEngineNotReady indicates the engine was invoked before a catalog
	// snapshot and its embedding matrix were built.
	ErrEngineNotReady = errors.New("catalog embeddings not built")
)
