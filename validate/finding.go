// Package validate implements the validation checks that decide
// whether a loaded production-metadata graph conforms to the required
// structure, and the runner that aggregates their findings into a
// single verdict.
//
// Each check is a pure function over an immutable store.Graph and
// returns structured results. Rendering is left entirely to the report
// package; nothing here formats text for humans.
package validate

import "github.com/me-nexus/omccheck/store"

// Severity classifies a finding's effect on the verdict.
type Severity string

const (
	// SeverityError marks a blocking structural defect. Any error
	// finding fails the overall validation.
	SeverityError Severity = "error"

	// SeverityWarning marks an advisory finding that never affects
	// the verdict.
	SeverityWarning Severity = "warning"

	// SeverityQuality marks a non-blocking data quality issue.
	SeverityQuality Severity = "quality"
)

// Finding kind constants identify what a finding reports.
const (
	FindingMissingEntityType   = "missing_entity_type"
	FindingLiteralLocation     = "literal_location"
	FindingMalformedConnection = "malformed_connection"
	FindingNoConnection        = "no_connection"
	FindingMisspelling         = "misspelling"
	FindingCircularIdentifier  = "circular_identifier"
)

// Finding is a single structured validation result.
type Finding struct {
	Severity Severity  `json:"severity"`
	Type     string    `json:"type"`
	Subject  store.IRI `json:"subject,omitempty"`
	Message  string    `json:"message"`
	Suggest  string    `json:"suggestion,omitempty"`
}

// Blocking reports whether the finding fails validation.
func (f Finding) Blocking() bool {
	return f.Severity == SeverityError
}
