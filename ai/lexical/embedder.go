package lexical

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/core"
)

// Keyword lexicons. Each term present as a substring of the lowercased text
// contributes one count to its lexicon's feature.
var (
	technicalTerms = []string{
		"java", "python", "javascript", "sql", "programming", "technical",
		"coding", "software", "data", "analysis", "database", "development",
	}
	behavioralTerms = []string{
		"personality", "behavior", "teamwork", "leadership", "communication",
		"collaboration", "motivation", "culture", "customer", "service",
	}
	cognitiveTerms = []string{
		"reasoning", "logical", "numerical", "verbal", "analytical",
		"critical", "problem", "solving", "cognitive", "ability",
	}
)

// Embedder is the deterministic fallback embedding strategy. It derives a
// fixed-length feature vector from surface statistics of the text: token
// counts, lexicon hits, and letter frequencies. Identical input text always
// yields a bit-identical vector. It needs no external resources and never
// fails, which makes it the terminal strategy of every embedding chain.
type Embedder struct{}

var _ ai.Embedder = (*Embedder)(nil)

// NewEmbedder creates the lexical fallback embedder.
func NewEmbedder() *Embedder {
	return &Embedder{}
}

// EmbedText builds the feature vector for a single text. The layout is, in
// order: word count, character count, space count, one hit-count per lexicon
// (technical, behavioral, cognitive), then 26 per-letter occurrence counts.
// The vector is zero-padded to the full embedding dimension and
// L2-normalized; a zero vector is left unnormalized.
func (e *Embedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	lower := strings.ToLower(text)

	features := make([]float32, 0, core.EmbeddingDim)
	features = append(features,
		float32(len(strings.Fields(lower))),
		float32(utf8.RuneCountInString(text)),
		float32(strings.Count(text, " ")),
	)

	for _, lexicon := range [][]string{technicalTerms, behavioralTerms, cognitiveTerms} {
		var hits float32
		for _, term := range lexicon {
			if strings.Contains(lower, term) {
				hits++
			}
		}
		features = append(features, hits)
	}

	for ch := 'a'; ch <= 'z'; ch++ {
		features = append(features, float32(strings.Count(lower, string(ch))))
	}

	if len(features) > core.EmbeddingDim {
		features = features[:core.EmbeddingDim]
	}
	vector := make([]float32, core.EmbeddingDim)
	copy(vector, features)

	normalize(vector)
	return vector, nil
}

// EmbedTexts builds feature vectors for multiple texts in input order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i], _ = e.EmbedText(ctx, text)
	}
	return vectors, nil
}

// normalize scales v to unit length in place. A zero vector is left as is.
func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
}
