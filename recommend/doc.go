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


// Package recommend ranks assessment catalogs against free-text queries.
//
// The Engine type embeds the catalog once into an immutable snapshot and
// answers queries by cosine similarity over that snapshot. A request runs
// through several stages:
//   - Intent analysis on the raw query decides whether category balancing
//     applies
//   - Query preparation fetches and extracts text when the query is a URL,
//     and wraps very short queries with guiding context
//   - The prepared query is embedded and ranked against every catalog entry
//   - Balanced requests draw from the Knowledge & Skills and Personality &
//     Behavior partitions of the full ranking; plain requests take the top K
//
// Snapshots are swapped atomically, so rebuilds never disturb in-flight
// queries. The RecommendMonitor interface exposes per-stage callbacks for
// callers that want visibility into a request.
package recommend
