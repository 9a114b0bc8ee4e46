package lexical

import (
	"context"
	"math"
	"testing"

	"github.com/poiesic/assessrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedText_Deterministic(t *testing.T) {
	e := NewEmbedder()
	ctx := context.Background()

	a, err := e.EmbedText(ctx, "hiring java developers with teamwork skills")
	require.NoError(t, err)
	b, err := e.EmbedText(ctx, "hiring java developers with teamwork skills")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, core.EmbeddingDim)
}

func TestEmbedText_FeatureLayout(t *testing.T) {
	e := NewEmbedder()

	// "java and sql" has 3 words, 12 runes, 2 spaces; two technical lexicon
	// hits (java, sql), no behavioral or cognitive hits.
	vector, err := e.EmbedText(context.Background(), "java and sql")
	require.NoError(t, err)

	var sum float64
	for _, x := range vector {
		sum += float64(x) * float64(x)
	}
	norm := float32(math.Sqrt(sum))
	assert.InDelta(t, 1.0, norm, 1e-5)

	unscale := func(i int) float32 { return vector[i] * norm }
	assert.InDelta(t, 3, unscale(0), 1e-4)  // word count
	assert.InDelta(t, 12, unscale(1), 1e-4) // rune count
	assert.InDelta(t, 2, unscale(2), 1e-4)  // space count
	assert.InDelta(t, 2, unscale(3), 1e-4)  // technical hits
	assert.InDelta(t, 0, unscale(4), 1e-4)  // behavioral hits
	assert.InDelta(t, 0, unscale(5), 1e-4)  // cognitive hits
	// Letter counts start at index 6: 'a' appears three times.
	assert.InDelta(t, 3, unscale(6), 1e-4)
}

func TestEmbedText_LexiconHits(t *testing.T) {
	e := NewEmbedder()
	ctx := context.Background()

	tech, err := e.EmbedText(ctx, "PYTHON PROGRAMMING")
	require.NoError(t, err)
	assert.Greater(t, tech[3], float32(0), "case-insensitive technical hits")

	behavioral, err := e.EmbedText(ctx, "collaborative leadership culture")
	require.NoError(t, err)
	assert.Greater(t, behavioral[4], float32(0), "stem matching counts collaboration")

	cognitive, err := e.EmbedText(ctx, "numerical reasoning ability")
	require.NoError(t, err)
	assert.Greater(t, cognitive[5], float32(0))
}

func TestEmbedText_EmptyInput(t *testing.T) {
	e := NewEmbedder()

	vector, err := e.EmbedText(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, vector, core.EmbeddingDim)

	// A zero vector must stay zero rather than become NaN.
	for i, x := range vector {
		assert.Zero(t, x, "index %d", i)
	}
}

func TestEmbedTexts_PreservesOrder(t *testing.T) {
	e := NewEmbedder()
	ctx := context.Background()

	texts := []string{"java", "teamwork", "reasoning"}
	vectors, err := e.EmbedTexts(ctx, texts)
	require.NoError(t, err)
	require.Len(t, vectors, len(texts))

	for i, text := range texts {
		single, err := e.EmbedText(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, single, vectors[i], "order mismatch at %d", i)
	}
}
