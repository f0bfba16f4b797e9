package validate

import (
	"sort"
	"strings"

	"github.com/me-nexus/omccheck/store"
	"github.com/me-nexus/omccheck/vocabulary"
)

// SpellingIssue records a label literal containing a known
// misspelling.
type SpellingIssue struct {
	Subject    store.IRI `json:"subject"`
	Value      string    `json:"value"`
	Token      string    `json:"token"`
	Correction string    `json:"correction"`
}

// DefaultMisspellings returns the built-in misspelling table mapping
// a lower-cased token to its correction.
func DefaultMisspellings() map[string]string {
	return map[string]string{
		"minessotta": "Minnesota",
	}
}

// CheckSpelling scans every rdfs:label literal for known misspelled
// tokens, case-insensitively. Matches are quality issues only and
// never fail validation.
func CheckSpelling(g store.Graph, misspellings map[string]string) []SpellingIssue {
	tokens := sortedKeys(misspellings)
	var issues []SpellingIssue
	for _, t := range g.Match(store.Empty, vocabulary.RDFSLabel, nil) {
		if !t.Object.IsLiteral() {
			continue
		}
		label := strings.ToLower(t.Object.Value)
		for _, token := range tokens {
			if strings.Contains(label, token) {
				issues = append(issues, SpellingIssue{
					Subject:    t.Subject,
					Value:      t.Object.Value,
					Token:      token,
					Correction: misspellings[token],
				})
			}
		}
	}
	return issues
}

// CountCircularIdentifiers counts hasIdentifier triples whose subject
// and object are the same value: an entity pointing at itself as its
// own identifier. The count feeds a single aggregate quality issue.
func CountCircularIdentifiers(g store.Graph) int {
	count := 0
	for _, t := range g.Match(store.Empty, vocabulary.HasIdentifier, nil) {
		if string(t.Subject) == t.Object.Value {
			count++
		}
	}
	return count
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Stable token order keeps reports identical across runs.
	sort.Strings(keys)
	return keys
}
