// Package report renders a validate.Result for humans and machines.
// The text form mirrors the four numbered diagnostic sections the
// pipeline operators read; the JSON form carries the same findings
// structurally for tooling.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/me-nexus/omccheck/validate"
)

const rule = "======================================================================"

// Format selects a report serialization.
type Format string

const (
	// FormatText is the human-readable four-section report.
	FormatText Format = "text"
	// FormatJSON is the structured report for tooling.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s (valid: text, json)", s)
	}
}

// Writer renders validation results in one format.
type Writer struct {
	format Format

	pass *color.Color
	fail *color.Color
	warn *color.Color
}

// NewWriter creates a Writer. When colorize is false the text output
// is plain, which also keeps piped output stable.
func NewWriter(format Format, colorize bool) *Writer {
	w := &Writer{
		format: format,
		pass:   color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
	}
	if !colorize {
		w.pass.DisableColor()
		w.fail.DisableColor()
		w.warn.DisableColor()
	}
	return w
}

// Write renders the result for the named source file to out.
func (w *Writer) Write(out io.Writer, source string, res *validate.Result) error {
	if w.format == FormatJSON {
		return w.writeJSON(out, source, res)
	}
	return w.writeText(out, source, res)
}

func (w *Writer) writeText(out io.Writer, source string, res *validate.Result) error {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	sb.WriteString("OMC GRAPH VALIDATION: " + source + "\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(w.pass.Sprintf("✓ Loaded %d triples", res.TripleCount) + "\n\n")

	w.writePresence(&sb, res)
	w.writeReferences(&sb, res)
	w.writeConnectivity(&sb, res)
	w.writeQuality(&sb, res)

	sb.WriteString("\n" + rule + "\n")
	if res.Passed {
		sb.WriteString(w.pass.Sprint("✓ VALIDATION PASSED") + "\n")
		sb.WriteString("\nAll required entities present and properly connected.\n")
		if n := len(res.Warnings()); n > 0 {
			sb.WriteString(fmt.Sprintf("Note: %d non-blocking issues detected above.\n", n))
		}
	} else {
		sb.WriteString(w.fail.Sprint("✗ VALIDATION FAILED") + "\n")
		sb.WriteString("\nCritical issues must be fixed before proceeding.\n")
	}
	sb.WriteString(rule + "\n")

	_, err := io.WriteString(out, sb.String())
	return err
}

func (w *Writer) writePresence(sb *strings.Builder, res *validate.Result) {
	sb.WriteString("[1] Checking Required Entity Types...\n")
	for _, p := range res.Presence {
		if p.Satisfied() {
			sb.WriteString("    " + w.pass.Sprintf("✓ %s: %d found", p.Name, p.Count) + "\n")
		} else {
			sb.WriteString("    " + w.fail.Sprintf("✗ %s: MISSING", p.Name) + "\n")
		}
	}
}

func (w *Writer) writeReferences(sb *strings.Builder, res *validate.Result) {
	sb.WriteString("\n[2] Checking Location References...\n")
	if len(res.ReferenceDefects) == 0 {
		sb.WriteString("    " + w.pass.Sprint("✓ All location references are URIs") + "\n")
		return
	}
	sb.WriteString("    CRITICAL ERRORS FOUND:\n")
	for _, d := range res.ReferenceDefects {
		sb.WriteString("    " + w.fail.Sprintf("✗ %s → %q (STRING LITERAL)", shorten(d.Subject.LocalName(), 20), d.Value) + "\n")
	}
	sb.WriteString("    FIX: Remove quotes from location references\n")
}

func (w *Writer) writeConnectivity(sb *strings.Builder, res *validate.Result) {
	sb.WriteString("\n[3] Checking Participant→Location Connection...\n")
	for _, c := range res.Connectivity.Malformed {
		sb.WriteString("    " + w.fail.Sprintf("✗ %s → Person → location uses STRING LITERAL", shorten(c.Participant.LocalName(), 15)) + "\n")
	}
	for _, c := range res.Connectivity.Connections {
		sb.WriteString("    " + w.pass.Sprintf("✓ %s → Person → Location", shorten(c.Participant.LocalName(), 15)) + "\n")
	}
	if !res.Connectivity.Found() {
		sb.WriteString("    " + w.warn.Sprint("⚠ No Participant→Location connection found") + "\n")
		sb.WriteString("      (Expected: Participant → Person → Location)\n")
	}
}

func (w *Writer) writeQuality(sb *strings.Builder, res *validate.Result) {
	sb.WriteString("\n[4] Checking Data Quality...\n")
	if len(res.Spelling) == 0 && res.CircularIDs == 0 {
		sb.WriteString("    " + w.pass.Sprint("✓ No data quality issues detected") + "\n")
		return
	}
	sb.WriteString("    Quality Issues Found:\n")
	for _, s := range res.Spelling {
		sb.WriteString("    " + w.warn.Sprintf("⚠ Spelling: %q should be %q", s.Value, s.Correction) + "\n")
	}
	if res.CircularIDs > 0 {
		sb.WriteString("    " + w.warn.Sprintf("⚠ %d circular identifier references (entity points to itself)", res.CircularIDs) + "\n")
		sb.WriteString("      Recommend: Use blank nodes for identifier structure\n")
	}
}

// shorten truncates a local name for display, marking the cut.
func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
