package recommend

import (
	"sort"
	"strings"

	"github.com/poiesic/assessrec/core"
)

// balanceResults mixes knowledge and personality results for a mixed-intent
// query. It partitions the ENTIRE ranking (not just the top slice) into
// three buckets by category substring, preserving each bucket's rank order,
// then allocates slots so both primary buckets are represented before
// filling the remainder from the other bucket. The assembled set is
// re-sorted by score so the strongest items lead, and the final truncation
// to topK is the authoritative length contract.
func balanceResults(assessments []core.Assessment, ranked []rankedItem, topK int) []core.ScoredAssessment {
	var knowledge, personality, other []core.ScoredAssessment

	for _, item := range ranked {
		scored := core.ScoredAssessment{
			Assessment: assessments[item.index],
			Score:      item.score,
		}
		category := scored.Assessment.Category
		switch {
		case strings.Contains(category, "Knowledge"):
			knowledge = append(knowledge, scored)
		case strings.Contains(category, "Personality") || strings.Contains(category, "Behavior"):
			personality = append(personality, scored)
		default:
			other = append(other, scored)
		}
	}

	results := make([]core.ScoredAssessment, 0, topK)

	if len(knowledge) > 0 && len(personality) > 0 {
		// Aim for a 50-50 split when both categories are present.
		half := topK/2 + 1
		kCount := min(len(knowledge), half)
		pCount := min(len(personality), half)

		// Give the other bucket the slack when one side runs short.
		if len(knowledge) < kCount {
			pCount = min(len(personality), topK-len(knowledge))
		} else if len(personality) < pCount {
			kCount = min(len(knowledge), topK-len(personality))
		}

		results = append(results, knowledge[:kCount]...)
		results = append(results, personality[:pCount]...)
	} else {
		// Use whichever bucket has anything.
		results = append(results, knowledge[:min(len(knowledge), topK)]...)
		results = append(results, personality[:min(len(personality), topK)]...)
	}

	if remaining := topK - len(results); remaining > 0 {
		results = append(results, other[:min(len(other), remaining)]...)
	}

	// Score order wins the final presentation; the category quotas above
	// only decide membership.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}
