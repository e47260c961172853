package core

import (
	"github.com/redactyl/colredact/internal/classify"
	"github.com/redactyl/colredact/internal/redact"
	"github.com/redactyl/colredact/internal/rules"
	"github.com/redactyl/colredact/internal/table"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Table    = table.Table
	Column   = table.Column
	Rule     = rules.Rule
	RuleSet  = rules.RuleSet
	Category = rules.Category
	Match    = classify.Match
	Result   = classify.Result
)

// MaskToken is written into every cell of a redacted column.
const MaskToken = redact.MaskToken

// NewTable builds a table, rejecting duplicate names and ragged columns.
func NewTable(columns ...Column) (*Table, error) { return table.New(columns...) }

// DefaultRules returns the built-in rule set.
func DefaultRules() RuleSet { return rules.Default() }

// Classify returns the category for a single column name.
func Classify(column string, rs RuleSet) (Match, bool) { return classify.Classify(column, rs) }

// Scan flags the columns of t using the built-in rules.
func Scan(t *Table) Result { return classify.Scan(t, rules.Default()) }

// ScanWith flags the columns of t using rs.
func ScanWith(t *Table, rs RuleSet) Result { return classify.Scan(t, rs) }

// Redact returns a copy of t with the named columns masked.
func Redact(t *Table, columns []string) *Table { return redact.Columns(t, columns) }
