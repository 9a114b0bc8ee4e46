package recommend

import (
	"math"
	"sort"
)

// rankedItem is one row of a full catalog ranking: the catalog index and
// its cosine similarity to the query vector.
type rankedItem struct {
	index int
	score float32
}

// cosineSimilarity computes dot(normalize(a), normalize(b)). A zero-norm
// vector is treated as already normalized (norm substituted with 1), so the
// function never divides by zero and agrees with the lexical embedder's own
// normalization when both sides are fallback vectors. Accumulation runs in
// float64 for reproducibility across inputs.
func cosineSimilarity(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 {
		normA = 1
	}
	if normB == 0 {
		normB = 1
	}

	return float32(dot / (normA * normB))
}

// rankAll scores the query vector against every catalog vector and returns
// the full ranking sorted by score descending. The sort is stable over the
// catalog order, so equal scores preserve original catalog position.
// Exact brute-force: O(catalog x dimension), which is the right trade for
// catalogs of tens to hundreds of records.
func rankAll(query []float32, matrix [][]float32) []rankedItem {
	items := make([]rankedItem, len(matrix))
	for i, row := range matrix {
		items[i] = rankedItem{index: i, score: cosineSimilarity(query, row)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	return items
}
