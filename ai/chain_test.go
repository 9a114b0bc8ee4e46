package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/assessrec/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainEmbedder(t *testing.T) {
	ctx := context.Background()

	t.Run("first strategy serves when healthy", func(t *testing.T) {
		primary := mock.NewMockEmbedder()
		fallback := mock.NewMockEmbedder()

		chain := NewChainEmbedder(
			Strategy{Name: "primary", Embedder: primary},
			Strategy{Name: "fallback", Embedder: fallback},
		)

		result, err := chain.EmbedTextResult(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "primary", result.Strategy)
		assert.False(t, result.Degraded)
		assert.NotEmpty(t, result.Vector)
		assert.Zero(t, fallback.CallCount())
	})

	t.Run("falls back and flags degradation", func(t *testing.T) {
		primary := mock.NewMockEmbedder()
		primary.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("provider down")
		}
		fallback := mock.NewMockEmbedder()

		chain := NewChainEmbedder(
			Strategy{Name: "primary", Embedder: primary},
			Strategy{Name: "fallback", Embedder: fallback},
		)

		result, err := chain.EmbedTextResult(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "fallback", result.Strategy)
		assert.True(t, result.Degraded)
		assert.NotEmpty(t, result.Vector)
	})

	t.Run("all strategies failing returns last error", func(t *testing.T) {
		failing := mock.NewMockEmbedder()
		failing.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("unavailable")
		}

		chain := NewChainEmbedder(Strategy{Name: "only", Embedder: failing})

		_, err := chain.EmbedTextResult(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unavailable")
	})

	t.Run("empty chain is an error", func(t *testing.T) {
		chain := NewChainEmbedder()

		_, err := chain.EmbedTextResult(ctx, "hello")
		assert.ErrorIs(t, err, ErrNoStrategies)
	})

	t.Run("batch degrades per text", func(t *testing.T) {
		calls := 0
		flaky := mock.NewMockEmbedder()
		flaky.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			calls++
			if calls == 2 {
				return nil, errors.New("transient")
			}
			return []float32{1, 0}, nil
		}
		fallback := mock.NewMockEmbedder()

		chain := NewChainEmbedder(
			Strategy{Name: "flaky", Embedder: flaky},
			Strategy{Name: "fallback", Embedder: fallback},
		)

		vectors, err := chain.EmbedTexts(ctx, []string{"a", "b", "c"})
		require.NoError(t, err)
		require.Len(t, vectors, 3)
		for _, v := range vectors {
			assert.NotEmpty(t, v)
		}
		// Only the second text needed the fallback.
		assert.Equal(t, 1, fallback.CallCount())
	})
}
