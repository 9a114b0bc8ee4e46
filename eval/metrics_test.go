package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecallAtK(t *testing.T) {
	tests := []struct {
		name      string
		predicted []string
		relevant  []string
		k         int
		want      float64
	}{
		{
			name:      "all relevant retrieved",
			predicted: []string{"a", "b", "c"},
			relevant:  []string{"a", "b"},
			k:         3,
			want:      1.0,
		},
		{
			name:      "half retrieved",
			predicted: []string{"a", "x", "y"},
			relevant:  []string{"a", "b"},
			k:         3,
			want:      0.5,
		},
		{
			name:      "relevant item beyond k",
			predicted: []string{"x", "y", "a"},
			relevant:  []string{"a"},
			k:         2,
			want:      0.0,
		},
		{
			name:      "empty relevant set scores zero",
			predicted: []string{"a", "b"},
			relevant:  nil,
			k:         10,
			want:      0.0,
		},
		{
			name:      "k larger than predictions",
			predicted: []string{"a"},
			relevant:  []string{"a", "b"},
			k:         10,
			want:      0.5,
		},
		{
			name:      "duplicate predictions count once",
			predicted: []string{"a", "a", "a"},
			relevant:  []string{"a", "b"},
			k:         3,
			want:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecallAtK(tt.predicted, tt.relevant, tt.k)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPrecisionAtK(t *testing.T) {
	tests := []struct {
		name      string
		predicted []string
		relevant  []string
		k         int
		want      float64
	}{
		{"all precise", []string{"a", "b"}, []string{"a", "b", "c"}, 2, 1.0},
		{"half precise", []string{"a", "x"}, []string{"a"}, 2, 0.5},
		{"no predictions", nil, []string{"a"}, 5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrecisionAtK(tt.predicted, tt.relevant, tt.k)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMeanRecallAtK(t *testing.T) {
	groundTruth := map[string][]string{
		"java developers": {"java-test", "teamwork"},
		"data analyst":    {"data-analysis"},
	}

	predictions := []Prediction{
		{Query: "java developers", URLs: []string{"java-test", "teamwork", "opq32"}},
		{Query: "data analyst", URLs: []string{"numerical", "verbal"}},
	}

	// First query scores 1.0, second 0.0.
	got := MeanRecallAtK(predictions, groundTruth, 10)
	assert.InDelta(t, 0.5, got, 1e-9)

	t.Run("unlabeled query pulls the mean down", func(t *testing.T) {
		withUnlabeled := append(predictions, Prediction{Query: "unknown", URLs: []string{"x"}})
		got := MeanRecallAtK(withUnlabeled, groundTruth, 10)
		assert.InDelta(t, 1.0/3.0, got, 1e-9)
	})

	t.Run("empty predictions", func(t *testing.T) {
		assert.Zero(t, MeanRecallAtK(nil, groundTruth, 10))
	})
}
