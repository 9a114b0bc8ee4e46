// Package lexical provides the deterministic, dependency-free embedding
// fallback. The vectors it produces are far coarser than model embeddings
// but are bit-reproducible, cost nothing, and keep the recommendation
// engine serving when no embedding service is reachable.
package lexical
