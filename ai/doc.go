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


// Package ai provides the embedding abstractions used by the recommendation
// engine.
//
// The package defines the Embedder interface plus two composable wrappers:
//
//   - ChainEmbedder: an ordered fallback chain over named strategies. A
//     failed call falls through to the next strategy for that call only,
//     and the result is tagged with the strategy that served it so degraded
//     operation is observable without being an error.
//   - CachingEmbedder: a concurrency-safe read-through memoization layer
//     keyed by exact text.
//
// # Implementation Packages
//
// Three implementation sub-packages cover the strategy spectrum:
//
//   - ai/openai: OpenAI-compatible APIs via langchaingo. Serves both the
//     hosted credentialed strategy and the local encoder strategy (Ollama
//     and friends), differing only in Config.
//   - ai/lexical: the deterministic, dependency-free fallback. Never fails,
//     so a chain that ends with it always produces a vector.
//   - ai/mock: test doubles with injectable behavior.
//
// # Usage
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	strategies := []ai.Strategy{}
//	if remote, err := openai.NewEmbedder(cfg); err == nil {
//	    strategies = append(strategies, ai.Strategy{Name: "openai", Embedder: remote})
//	}
//	strategies = append(strategies, ai.Strategy{Name: "lexical", Embedder: lexical.NewEmbedder()})
//	embedder := ai.NewCachingEmbedder(ai.NewChainEmbedder(strategies...))
package ai
