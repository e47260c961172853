package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/redactyl/colredact/internal/classify"
	"github.com/redactyl/colredact/internal/rules"
)

type PrintOptions struct {
	NoColor bool
	File    string
	Columns int
	Rows    int
}

var (
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func paint(s lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

// PrintTable renders flagged columns as a bordered table.
func PrintTable(w io.Writer, res classify.Result, opts PrintOptions) error {
	if res.Len() == 0 {
		fmt.Fprintln(w, "No sensitive columns found ✅")
	} else {
		tw := tablewriter.NewWriter(w)
		tw.Header("COLUMN", "RULE", "PATTERN", "CATEGORY")
		for _, m := range res.Matches() {
			if err := tw.Append([]string{m.Column, m.RuleID, m.Pattern, string(m.Category)}); err != nil {
				return err
			}
		}
		if err := tw.Render(); err != nil {
			return err
		}
	}
	printFooter(w, res, opts)
	return nil
}

// PrintText renders flagged columns as plain aligned text.
func PrintText(w io.Writer, res classify.Result, opts PrintOptions) {
	if res.Len() == 0 {
		fmt.Fprintln(w, paint(okStyle, "No sensitive columns found", opts.NoColor))
	} else {
		maxCol, maxRule := 6, 4
		for _, m := range res.Matches() {
			if l := len(m.Column); l > maxCol {
				maxCol = l
			}
			if l := len(m.RuleID); l > maxRule {
				maxRule = l
			}
		}
		fmt.Fprintf(w, "Flagged: %d\n", res.Len())
		for _, m := range res.Matches() {
			rule := fmt.Sprintf("%-*s", maxRule, m.RuleID)
			fmt.Fprintf(w, "%-*s  %s  %s  %s\n",
				maxCol, m.Column,
				paint(ruleStyle, rule, opts.NoColor),
				paint(patternStyle, fmt.Sprintf("%q", m.Pattern), opts.NoColor),
				m.Category)
		}
	}
	printFooter(w, res, opts)
}

func printFooter(w io.Writer, res classify.Result, opts PrintOptions) {
	if opts.File == "" && opts.Columns == 0 {
		return
	}
	fmt.Fprintln(w)
	if opts.File != "" {
		fmt.Fprintf(w, "File: %s\n", opts.File)
	}
	fmt.Fprintf(w, "Flagged columns: %d of %d\n", res.Len(), opts.Columns)
	fmt.Fprintf(w, "Rows: %d\n", opts.Rows)
}

// PrintRules lists a rule set in precedence order.
func PrintRules(w io.Writer, rs rules.RuleSet) error {
	tw := tablewriter.NewWriter(w)
	tw.Header("#", "RULE", "PATTERNS", "CATEGORY")
	for i, r := range rs.Rules() {
		if err := tw.Append([]string{fmt.Sprint(i + 1), r.ID, strings.Join(r.Patterns, ", "), string(r.Category)}); err != nil {
			return err
		}
	}
	return tw.Render()
}

// Redaction summarises a redact run.
type Redaction struct {
	Source  string   `json:"source"`
	Output  string   `json:"output"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
	DryRun  bool     `json:"dry_run,omitempty"`
}

// PrintRedaction writes a short human summary of a redact run.
func PrintRedaction(w io.Writer, r Redaction) {
	verb := "Wrote"
	if r.DryRun {
		verb = "(dry-run) would write"
	}
	if len(r.Columns) == 0 {
		fmt.Fprintf(w, "%s %s (no columns redacted)\n", verb, r.Output)
		return
	}
	fmt.Fprintf(w, "%s %s\n", verb, r.Output)
	fmt.Fprintf(w, "Redacted %d column(s) across %d row(s): %s\n", len(r.Columns), r.Rows, strings.Join(r.Columns, ", "))
}
