package validate

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/me-nexus/omccheck/store"
)

// Runner drives all checks in a fixed order against one loaded graph.
// It never short-circuits: every check runs and contributes to the
// report even after a blocking defect is found.
type Runner struct {
	requirements []PresenceRequirement
	misspellings map[string]string
	logger       *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithRequirements overrides the required entity types.
func WithRequirements(reqs []PresenceRequirement) Option {
	return func(r *Runner) { r.requirements = reqs }
}

// WithMisspellings overrides the misspelling table.
func WithMisspellings(m map[string]string) Option {
	return func(r *Runner) { r.misspellings = m }
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a Runner with the fixed default contract, applying
// any options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		requirements: DefaultRequirements(),
		misspellings: DefaultMisspellings(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the aggregate outcome of one validation run.
type Result struct {
	// RunID correlates log lines with a run. It is excluded from
	// serialized reports so identical inputs yield identical output.
	RunID string `json:"-"`

	TripleCount int `json:"triple_count"`

	Presence         []PresenceResult   `json:"presence"`
	ReferenceDefects []ReferenceDefect  `json:"reference_defects,omitempty"`
	Connectivity     ConnectivityResult `json:"connectivity"`
	Spelling         []SpellingIssue    `json:"spelling_issues,omitempty"`
	CircularIDs      int                `json:"circular_identifiers"`

	// Findings holds every error, warning, and quality issue in
	// presentation order.
	Findings []Finding `json:"findings,omitempty"`

	Passed bool `json:"passed"`
}

// Errors returns the blocking findings.
func (r *Result) Errors() []Finding {
	return r.filter(func(f Finding) bool { return f.Severity == SeverityError })
}

// Warnings returns the advisory findings, quality issues included.
func (r *Result) Warnings() []Finding {
	return r.filter(func(f Finding) bool { return f.Severity != SeverityError })
}

func (r *Result) filter(keep func(Finding) bool) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// Run executes all checks against g and computes the verdict. The
// verdict is true iff every required entity type is present, no
// location reference is a literal, and no two-hop connection is
// malformed. Advisory findings never flip it.
func (r *Runner) Run(g store.Graph) *Result {
	result := &Result{
		RunID:       uuid.NewString(),
		TripleCount: g.Len(),
	}

	result.Presence = CheckPresence(g, r.requirements)
	result.ReferenceDefects = CheckLocationReferences(g)
	result.Connectivity = CheckConnectivity(g)
	result.Spelling = CheckSpelling(g, r.misspellings)
	result.CircularIDs = CountCircularIdentifiers(g)

	result.Findings = r.collectFindings(result)
	result.Passed = r.verdict(result)

	r.logger.Debug("validation run complete",
		"run_id", result.RunID,
		"triples", result.TripleCount,
		"errors", len(result.Errors()),
		"warnings", len(result.Warnings()),
		"passed", result.Passed)

	return result
}

// collectFindings flattens structured check results into ordered
// findings, blocking first within each check's section order.
func (r *Runner) collectFindings(res *Result) []Finding {
	var findings []Finding

	for _, p := range res.Presence {
		if !p.Satisfied() {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Type:     FindingMissingEntityType,
				Subject:  p.Type,
				Message:  fmt.Sprintf("required entity type %s has no instances", p.Name),
			})
		}
	}

	for _, d := range res.ReferenceDefects {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Type:     FindingLiteralLocation,
			Subject:  d.Subject,
			Message:  fmt.Sprintf("hasLocation points at string literal %q", d.Value),
			Suggest:  "reference a Location entity instead of an inline string",
		})
	}

	for _, c := range res.Connectivity.Malformed {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Type:     FindingMalformedConnection,
			Subject:  c.Participant,
			Message: fmt.Sprintf("connection %s → %s → location exists but terminates in string literal %q",
				c.Participant.LocalName(), c.Person.LocalName(), c.Location.Value),
		})
	}
	if !res.Connectivity.Found() {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Type:     FindingNoConnection,
			Message:  "no Participant→Person→Location connection found",
			Suggest:  "expected chain: Participant → hasParticipantStructuralCharacteristic → Person → hasLocation → Location",
		})
	}

	for _, s := range res.Spelling {
		findings = append(findings, Finding{
			Severity: SeverityQuality,
			Type:     FindingMisspelling,
			Subject:  s.Subject,
			Message:  fmt.Sprintf("label %q contains misspelling %q", s.Value, s.Token),
			Suggest:  fmt.Sprintf("should be %q", s.Correction),
		})
	}
	if res.CircularIDs > 0 {
		findings = append(findings, Finding{
			Severity: SeverityQuality,
			Type:     FindingCircularIdentifier,
			Message:  fmt.Sprintf("%d circular identifier references (entity points to itself)", res.CircularIDs),
			Suggest:  "model the identifier as a blank structural node instead of a self-loop",
		})
	}

	return findings
}

func (r *Runner) verdict(res *Result) bool {
	for _, p := range res.Presence {
		if !p.Satisfied() {
			return false
		}
	}
	if len(res.ReferenceDefects) > 0 {
		return false
	}
	if len(res.Connectivity.Malformed) > 0 {
		return false
	}
	return true
}
