package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/redactyl/colredact/internal/classify"
	"github.com/redactyl/colredact/internal/rules"
)

// ScanReport is the JSON shape of `colredact scan --format json`.
type ScanReport struct {
	File    string           `json:"file"`
	Schema  string           `json:"schema"`
	Columns int              `json:"columns"`
	Rows    int              `json:"rows"`
	Flagged []classify.Match `json:"flagged"`
}

// NewScanReport assembles a report for a scanned file.
func NewScanReport(file string, columns []string, rows int, res classify.Result) ScanReport {
	flagged := res.Matches()
	if flagged == nil {
		flagged = []classify.Match{} // no `null` in JSON
	}
	return ScanReport{
		File:    file,
		Schema:  Fingerprint(columns),
		Columns: len(columns),
		Rows:    rows,
		Flagged: flagged,
	}
}

// Fingerprint hashes an ordered header so reviewers can tell when a file's
// columns changed between runs.
func Fingerprint(columns []string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(columns, "\x00")))
}

// WriteJSON pretty-prints v as JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteRulesJSON writes a rule set as a JSON array in precedence order.
func WriteRulesJSON(w io.Writer, rs rules.RuleSet) error {
	return WriteJSON(w, rs.Rules())
}
