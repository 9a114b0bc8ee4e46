package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{"identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal vectors", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite vectors", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector scores zero", []float32{0, 0, 0}, []float32{1, 2, 3}, 0},
		{"both zero", []float32{0, 0}, []float32{0, 0}, 0},
		{"scale invariant", []float32{1, 1}, []float32{10, 10}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float32{0.3, 0.1, 0.9}
	b := []float32{0.5, 0.5, 0.2}
	assert.Equal(t, cosineSimilarity(a, b), cosineSimilarity(b, a))
}

func TestCosineSimilarity_LengthMismatch(t *testing.T) {
	// Comparison runs over the shared prefix.
	got := cosineSimilarity([]float32{1, 0, 7}, []float32{1, 0})
	assert.InDelta(t, 1, got, 1e-6)
}

func TestRankAll(t *testing.T) {
	query := []float32{1, 0}
	matrix := [][]float32{
		{0, 1},         // orthogonal, score 0
		{1, 0},         // identical, score 1
		{0.7071, 0.7071}, // 45 degrees, score ~0.707
	}

	ranked := rankAll(query, matrix)
	require.Len(t, ranked, 3)

	assert.Equal(t, 1, ranked[0].index)
	assert.Equal(t, 2, ranked[1].index)
	assert.Equal(t, 0, ranked[2].index)
	assert.InDelta(t, 1.0, ranked[0].score, 1e-4)
}

func TestRankAll_StableTies(t *testing.T) {
	query := []float32{1, 0}
	matrix := [][]float32{
		{2, 0}, // same direction as query
		{3, 0},
		{1, 0},
	}

	ranked := rankAll(query, matrix)
	require.Len(t, ranked, 3)

	// All scores tie at 1; catalog order must survive.
	for i, item := range ranked {
		assert.Equal(t, i, item.index)
	}
}

func TestRankAll_Empty(t *testing.T) {
	assert.Empty(t, rankAll([]float32{1}, nil))
}
