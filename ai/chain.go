package ai

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoStrategies indicates a chain constructed without any strategies.
var ErrNoStrategies = errors.New("no embedding strategies configured")

// Strategy is a named embedding strategy participating in a fallback chain.
type Strategy struct {
	Name     string
	Embedder Embedder
}

// ChainEmbedder tries an ordered list of embedding strategies, falling back
// to the next one when a call fails. A failure affects only the call that
// hit it; batches are never aborted part-way. The terminal strategy is
// expected to be resource-free and infallible (the lexical embedder), so a
// chain that carries one always produces a vector.
type ChainEmbedder struct {
	strategies []Strategy
	logger     *slog.Logger
}

var _ ResultEmbedder = (*ChainEmbedder)(nil)

// NewChainEmbedder creates a chain over the given strategies, tried in order.
func NewChainEmbedder(strategies ...Strategy) *ChainEmbedder {
	return &ChainEmbedder{
		strategies: strategies,
		logger:     slog.Default().With("component", "embed-chain"),
	}
}

// EmbedTextResult runs the chain for a single text and tags the vector with
// the strategy that served it. Degraded is set when any strategy before the
// serving one failed.
func (c *ChainEmbedder) EmbedTextResult(ctx context.Context, text string) (EmbedResult, error) {
	if len(c.strategies) == 0 {
		return EmbedResult{}, ErrNoStrategies
	}

	var lastErr error
	for i, s := range c.strategies {
		vector, err := s.Embedder.EmbedText(ctx, text)
		if err != nil {
			c.logger.Warn("embedding strategy failed, trying next",
				"strategy", s.Name, "err", err)
			lastErr = err
			continue
		}
		return EmbedResult{
			Vector:   vector,
			Strategy: s.Name,
			Degraded: i > 0,
		}, nil
	}
	return EmbedResult{}, lastErr
}

// EmbedText generates an embedding for a single text string.
func (c *ChainEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	result, err := c.EmbedTextResult(ctx, text)
	if err != nil {
		return nil, err
	}
	return result.Vector, nil
}

// EmbedTexts generates embeddings for multiple texts. Each text runs the
// chain independently so one upstream failure degrades only its own call.
func (c *ChainEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := c.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}
