package intent

import (
	"strings"

	"github.com/poiesic/assessrec/core"
)

// Job levels recognized by Analyze. Matching is first-wins in the order
// senior, junior, mid; everything else is general.
const (
	LevelSenior  = "senior"
	LevelJunior  = "junior"
	LevelMid     = "mid"
	LevelGeneral = "general"
)

// Assessment type tags.
const (
	TypePersonality = "personality"
	TypeTechnical   = "technical"
	TypeCognitive   = "cognitive"
)

// skillRule maps a skill tag to the substrings that trigger it.
// Rules are ordered slices, not maps, so extraction output is deterministic.
type skillRule struct {
	tag      string
	patterns []string
}

var technicalRules = []skillRule{
	{"java", []string{"java", "j2ee", "spring"}},
	{"python", []string{"python", "django", "flask"}},
	{"javascript", []string{"javascript", "js", "react", "angular", "vue"}},
	{"sql", []string{"sql", "database", "mysql", "postgresql"}},
	{"data", []string{"data", "analysis", "analytics", "scientist"}},
	{"cloud", []string{"cloud", "aws", "azure", "gcp"}},
	{".net", []string{".net", "c#", "dotnet"}},
	{"cpp", []string{"c++", "cpp"}},
}

var softRules = []skillRule{
	{"teamwork", []string{"team", "collaborat", "work together"}},
	{"leadership", []string{"lead", "manag", "supervis"}},
	{"communication", []string{"communicat", "present", "interact"}},
	{"customer_service", []string{"customer", "client", "service"}},
	{"problem_solving", []string{"problem", "solv", "analytical"}},
}

var cognitiveRules = []skillRule{
	{"general_cognitive", []string{"cognitive", "reasoning", "logical", "analytical"}},
	{"numerical", []string{"numerical", "math", "quantitative"}},
	{"verbal", []string{"verbal", "language", "communication"}},
}

var levelRules = []skillRule{
	{LevelSenior, []string{"senior", "lead", "principal", "architect"}},
	{LevelJunior, []string{"junior", "entry", "graduate", "intern"}},
	{LevelMid, []string{"mid", "intermediate"}},
}

var typeRules = []skillRule{
	{TypePersonality, []string{"personality", "behavior", "culture"}},
	{TypeTechnical, []string{"technical", "coding", "programming"}},
	{TypeCognitive, []string{"cognitive", "ability", "aptitude"}},
}

// Analyze extracts structured intent from a free-text query using
// case-insensitive substring matching against fixed rule tables. It is a
// pure function: no state, no external calls. Every field of the returned
// Intent is populated; slices may be empty but are never nil.
func Analyze(query string) core.Intent {
	lower := strings.ToLower(query)

	result := core.Intent{
		TechnicalSkills:    matchRules(lower, technicalRules),
		SoftSkills:         matchRules(lower, softRules),
		CognitiveAbilities: matchRules(lower, cognitiveRules),
		JobLevel:           LevelGeneral,
		AssessmentTypes:    matchRules(lower, typeRules),
	}

	for _, rule := range levelRules {
		if containsAny(lower, rule.patterns) {
			result.JobLevel = rule.tag
			break
		}
	}

	return result
}

// ShouldBalance decides whether category balancing applies to a query: it
// must carry a technical signal and at least one behavioral or cognitive
// signal. The decision runs on the original query, before any rewriting.
func ShouldBalance(query string) bool {
	it := Analyze(query)

	technical := len(it.TechnicalSkills) > 0 || contains(it.AssessmentTypes, TypeTechnical)
	behavioral := len(it.SoftSkills) > 0 || contains(it.AssessmentTypes, TypePersonality)
	cognitive := len(it.CognitiveAbilities) > 0 || contains(it.AssessmentTypes, TypeCognitive)

	return technical && (behavioral || cognitive)
}

func matchRules(lower string, rules []skillRule) []string {
	matched := []string{}
	for _, rule := range rules {
		if containsAny(lower, rule.patterns) {
			matched = append(matched, rule.tag)
		}
	}
	return matched
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
