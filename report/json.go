package report

import (
	"encoding/json"
	"io"

	"github.com/me-nexus/omccheck/validate"
)

// jsonReport is the machine-readable report envelope. It carries the
// same findings as the text form, plus the source path and verdict at
// the top level so gates can consume it without digging.
type jsonReport struct {
	Source string           `json:"source"`
	Passed bool             `json:"passed"`
	Result *validate.Result `json:"result"`
}

func (w *Writer) writeJSON(out io.Writer, source string, res *validate.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Source: source,
		Passed: res.Passed,
		Result: res,
	})
}
