package ai

import (
	"context"
	"sync"
)

// CachingEmbedder memoizes an inner embedder by exact text match. The cache
// is unbounded for the process lifetime; keys are not normalized, so two
// texts differing only in whitespace occupy separate entries. Safe for
// concurrent use: insert-if-absent semantics make a duplicate concurrent
// insert of the same key harmless since vectors are deterministic for a
// given text and provider.
type CachingEmbedder struct {
	inner Embedder
	cache sync.Map // string -> []float32
}

var _ ResultEmbedder = (*CachingEmbedder)(nil)

// NewCachingEmbedder wraps an embedder with a read-through memoizing cache.
func NewCachingEmbedder(inner Embedder) *CachingEmbedder {
	return &CachingEmbedder{inner: inner}
}

// EmbedText returns the cached vector for text, computing and storing it on
// a miss.
func (e *CachingEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Load(text); ok {
		return cached.([]float32), nil
	}

	vector, err := e.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	actual, _ := e.cache.LoadOrStore(text, vector)
	return actual.([]float32), nil
}

// EmbedTexts embeds each text through the cache, preserving input order.
// Repeated inputs each get a vector in the output; only the computation is
// deduplicated.
func (e *CachingEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := e.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}

// EmbedTextResult reports a cache hit as strategy "cache"; on a miss it
// defers to the inner embedder's result when available.
func (e *CachingEmbedder) EmbedTextResult(ctx context.Context, text string) (EmbedResult, error) {
	if cached, ok := e.cache.Load(text); ok {
		return EmbedResult{Vector: cached.([]float32), Strategy: "cache"}, nil
	}

	if inner, ok := e.inner.(ResultEmbedder); ok {
		result, err := inner.EmbedTextResult(ctx, text)
		if err != nil {
			return EmbedResult{}, err
		}
		actual, _ := e.cache.LoadOrStore(text, result.Vector)
		result.Vector = actual.([]float32)
		return result, nil
	}

	vector, err := e.EmbedText(ctx, text)
	if err != nil {
		return EmbedResult{}, err
	}
	return EmbedResult{Vector: vector, Strategy: "inner"}, nil
}

// Seed preloads the cache from a persisted text-to-vector mapping.
func (e *CachingEmbedder) Seed(entries map[string][]float32) {
	for text, vector := range entries {
		e.cache.LoadOrStore(text, vector)
	}
}

// Dump copies the cache contents for persistence.
func (e *CachingEmbedder) Dump() map[string][]float32 {
	out := make(map[string][]float32)
	e.cache.Range(func(key, value any) bool {
		out[key.(string)] = value.([]float32)
		return true
	})
	return out
}

// Len returns the number of cached entries.
func (e *CachingEmbedder) Len() int {
	n := 0
	e.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
