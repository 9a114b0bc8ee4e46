package core

import (
	"encoding/binary"
	"encoding/json"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// EmbeddingDim is the fixed dimensionality of all embedding vectors in the
// system. It matches the output size of small sentence-encoder models so
// that catalog matrices built with different providers stay interchangeable.
const EmbeddingDim = 384

// ID is a unique identifier for catalog entries.
// It is generated from the assessment URL using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Assessment categories. Category is an open string on the wire but the
// catalog only ever carries these three values.
const (
	CategoryKnowledge   = "Knowledge & Skills"
	CategoryPersonality = "Personality & Behavior"
	CategoryGeneral     = "General"
)

// TestTypes is the fixed vocabulary for the Assessment.TestType field.
var TestTypes = []string{
	"Ability & Aptitude",
	"Biodata & Situational Judgement",
	"Competencies",
	"Development & 360",
	"Assessment Exercises",
	"Knowledge & Skills",
	"Personality & Behavior",
	"Simulations",
}

// Assessment is a single catalog entry. The URL is the unique identifier.
// Records are immutable once loaded; the catalog is a fixed ordered sequence
// for the lifetime of a snapshot.
type Assessment struct {
	URL             string   `json:"url"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	TestType        []string `json:"test_type"`
	AdaptiveSupport string   `json:"adaptive_support"`
	RemoteSupport   string   `json:"remote_support"`
	Duration        int      `json:"duration"`
}

// ID returns the content-based identifier derived from the assessment URL.
func (a *Assessment) ID() ID {
	return IDFromContent(a.URL)
}

// assessmentAlias avoids UnmarshalJSON recursion while letting TestType be
// decoded from either wire representation.
type assessmentAlias struct {
	URL             string          `json:"url"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	TestType        json.RawMessage `json:"test_type"`
	AdaptiveSupport string          `json:"adaptive_support"`
	RemoteSupport   string          `json:"remote_support"`
	Duration        int             `json:"duration"`
}

// UnmarshalJSON decodes an assessment, accepting test_type as either a list
// of strings or a single pipe-delimited string. This is the only place the
// duck-typed wire form exists; everything past ingestion sees []string.
func (a *Assessment) UnmarshalJSON(data []byte) error {
	var alias assessmentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	a.URL = alias.URL
	a.Name = alias.Name
	a.Description = alias.Description
	a.Category = alias.Category
	a.AdaptiveSupport = alias.AdaptiveSupport
	a.RemoteSupport = alias.RemoteSupport
	a.Duration = alias.Duration

	a.TestType = []string{}
	if len(alias.TestType) == 0 || string(alias.TestType) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(alias.TestType, &list); err == nil {
		a.TestType = NormalizeTestTypes(list)
		return nil
	}

	var single string
	if err := json.Unmarshal(alias.TestType, &single); err == nil {
		a.TestType = NormalizeTestTypes(single)
		return nil
	}

	return ErrInvalidTestType
}

// NormalizeTestTypes converts either representation of the test_type field
// into an ordered list of strings. Accepts []string, []any with string
// elements, or a pipe-delimited string. The function is idempotent: an
// already-normalized list comes back element for element.
func NormalizeTestTypes(value any) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, t := range v {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		parts := strings.Split(v, "|")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return []string{}
	}
}

// EmbeddingText builds the text representation used for the assessment's
// catalog embedding: name, description, category, and test types joined
// with spaces, empty parts skipped.
func (a *Assessment) EmbeddingText() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Name, a.Description, a.Category, strings.Join(a.TestType, " ")} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ScoredAssessment pairs a catalog entry with its cosine similarity score
// for a single query. Produced per request, never persisted.
type ScoredAssessment struct {
	Assessment Assessment
	Score      float32
}

// CatalogSnapshot is the index-aligned catalog and embedding matrix pair,
// plus the text-to-vector cache carried along for fast restarts. The
// Assessments and Matrix slices are always the same length; a mismatch
// means the snapshot must not be served.
type CatalogSnapshot struct {
	Assessments []Assessment
	Matrix      [][]float32
	Cache       map[string][]float32
	BuiltAt     int64 // unix micro
}

// Valid reports whether the snapshot honors the catalog/matrix alignment
// invariant.
func (s *CatalogSnapshot) Valid() bool {
	return s != nil && len(s.Assessments) == len(s.Matrix)
}

// Intent is the structured view of a free-text query produced by keyword
// matching. All slice fields are non-nil; JobLevel is always set.
type Intent struct {
	TechnicalSkills    []string `json:"technical_skills"`
	SoftSkills         []string `json:"soft_skills"`
	CognitiveAbilities []string `json:"cognitive_abilities"`
	JobLevel           string   `json:"job_level"`
	AssessmentTypes    []string `json:"assessment_types"`
}
