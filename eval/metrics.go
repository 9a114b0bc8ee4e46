package eval

// Prediction pairs a query with the ordered list of recommended assessment
// URLs produced for it.
type Prediction struct {
	Query string
	URLs  []string
}

// RecallAtK returns the fraction of relevant URLs found in the top k
// predictions. An empty relevant set scores zero.
func RecallAtK(predicted, relevant []string, k int) float64 {
	if len(relevant) == 0 {
		return 0
	}
	if k > len(predicted) {
		k = len(predicted)
	}

	relevantSet := make(map[string]struct{}, len(relevant))
	for _, url := range relevant {
		relevantSet[url] = struct{}{}
	}

	retrieved := 0
	seen := make(map[string]struct{}, k)
	for _, url := range predicted[:k] {
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		if _, ok := relevantSet[url]; ok {
			retrieved++
		}
	}

	return float64(retrieved) / float64(len(relevantSet))
}

// PrecisionAtK returns the fraction of the top k predictions that are
// relevant. With no predictions the score is zero.
func PrecisionAtK(predicted, relevant []string, k int) float64 {
	if k > len(predicted) {
		k = len(predicted)
	}
	if k == 0 {
		return 0
	}

	relevantSet := make(map[string]struct{}, len(relevant))
	for _, url := range relevant {
		relevantSet[url] = struct{}{}
	}

	retrieved := 0
	for _, url := range predicted[:k] {
		if _, ok := relevantSet[url]; ok {
			retrieved++
		}
	}

	return float64(retrieved) / float64(k)
}

// MeanRecallAtK averages RecallAtK across all predictions. Queries absent
// from the ground truth score zero, pulling the mean down rather than being
// skipped. Returns zero for an empty prediction set.
func MeanRecallAtK(predictions []Prediction, groundTruth map[string][]string, k int) float64 {
	if len(predictions) == 0 {
		return 0
	}

	var sum float64
	for _, p := range predictions {
		sum += RecallAtK(p.URLs, groundTruth[p.Query], k)
	}
	return sum / float64(len(predictions))
}
