package recommend

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/assessrec/core"
)

// balanceFixture builds a catalog plus a score-descending ranking where the
// first nKnowledge entries are knowledge assessments, the next nPersonality
// are personality, and the rest are general. Scores descend from 1.0 in
// steps of 0.01 in catalog order.
func balanceFixture(nKnowledge, nPersonality, nOther int) ([]core.Assessment, []rankedItem) {
	var assessments []core.Assessment
	add := func(category string, n int) {
		for i := 0; i < n; i++ {
			assessments = append(assessments, core.Assessment{
				Name:     fmt.Sprintf("%s-%d", category, i),
				URL:      fmt.Sprintf("https://example.com/%s-%d", category, i),
				Category: category,
			})
		}
	}
	add(core.CategoryKnowledge, nKnowledge)
	add(core.CategoryPersonality, nPersonality)
	add(core.CategoryGeneral, nOther)

	ranked := make([]rankedItem, len(assessments))
	for i := range assessments {
		ranked[i] = rankedItem{index: i, score: 1.0 - float32(i)*0.01}
	}
	return assessments, ranked
}

func countByCategory(results []core.ScoredAssessment) map[string]int {
	counts := make(map[string]int)
	for _, r := range results {
		counts[r.Assessment.Category]++
	}
	return counts
}

func TestBalanceResults_BothCategoriesPresent(t *testing.T) {
	assessments, ranked := balanceFixture(8, 8, 4)

	results := balanceResults(assessments, ranked, 10)
	require.Len(t, results, 10)

	counts := countByCategory(results)
	// half = 10/2+1 = 6 per side, twelve candidates truncated to ten.
	assert.GreaterOrEqual(t, counts[core.CategoryKnowledge], 4)
	assert.GreaterOrEqual(t, counts[core.CategoryPersonality], 4)
	assert.Zero(t, counts[core.CategoryGeneral])
}

func TestBalanceResults_ShortPersonalityBucket(t *testing.T) {
	assessments, ranked := balanceFixture(9, 2, 3)

	results := balanceResults(assessments, ranked, 10)
	require.Len(t, results, 10)

	counts := countByCategory(results)
	assert.Equal(t, 2, counts[core.CategoryPersonality])
	// Knowledge keeps its half quota; the general bucket covers the rest.
	assert.Equal(t, 6, counts[core.CategoryKnowledge])
	assert.Equal(t, 2, counts[core.CategoryGeneral])
}

func TestBalanceResults_SingleCategoryFillsFromOther(t *testing.T) {
	assessments, ranked := balanceFixture(3, 0, 5)

	results := balanceResults(assessments, ranked, 6)
	require.Len(t, results, 6)

	counts := countByCategory(results)
	assert.Equal(t, 3, counts[core.CategoryKnowledge])
	assert.Equal(t, 3, counts[core.CategoryGeneral])
}

func TestBalanceResults_ScoreOrder(t *testing.T) {
	assessments, ranked := balanceFixture(6, 6, 0)

	results := balanceResults(assessments, ranked, 10)
	require.NotEmpty(t, results)

	assert.True(t, sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	}))
}

func TestBalanceResults_TruncatesToTopK(t *testing.T) {
	assessments, ranked := balanceFixture(10, 10, 10)

	results := balanceResults(assessments, ranked, 5)
	assert.Len(t, results, 5)
}

func TestBalanceResults_EmptyRanking(t *testing.T) {
	results := balanceResults(nil, nil, 10)
	assert.Empty(t, results)
}
