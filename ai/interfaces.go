package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains one embedding per input text, in input order,
	// with no deduplication of the output even when input texts repeat.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ResultEmbedder is an Embedder that also reports which strategy produced
// each vector, so degraded fallback use is observable without being an error.
type ResultEmbedder interface {
	Embedder

	// EmbedTextResult generates an embedding and tags it with the strategy
	// that served it.
	EmbedTextResult(ctx context.Context, text string) (EmbedResult, error)
}

// EmbedResult is the tagged outcome of a single embedding call.
type EmbedResult struct {
	// Vector is the embedding.
	Vector []float32

	// Strategy names the strategy that produced the vector, for example
	// "openai", "lexical", or "cache".
	Strategy string

	// Degraded is true when an earlier strategy in the chain failed and a
	// later one served the call instead.
	Degraded bool
}
