package classify

import (
	"encoding/json"
	"strings"

	"github.com/redactyl/colredact/internal/rules"
	"github.com/redactyl/colredact/internal/table"
)

// Match records why a column was flagged.
type Match struct {
	Column   string         `json:"column"`
	RuleID   string         `json:"rule"`
	Pattern  string         `json:"pattern"`
	Category rules.Category `json:"category"`
}

// Classify returns the first rule whose pattern occurs in the lowercased
// column name. Rules are tried in set order and patterns in group order; the
// first hit wins. ok is false when nothing matches, which is not an error.
func Classify(column string, rs rules.RuleSet) (m Match, ok bool) {
	if column == "" {
		return Match{}, false
	}
	lower := rules.Normalize(column)
	rs.Each(func(r rules.Rule) bool {
		for _, p := range r.Patterns {
			if strings.Contains(lower, p) {
				m = Match{Column: column, RuleID: r.ID, Pattern: p, Category: r.Category}
				ok = true
				return false
			}
		}
		return true
	})
	return m, ok
}

// Result maps flagged column names to their match, in table column order.
type Result struct {
	matches []Match
	index   map[string]int
}

// Scan classifies every column of t in order and keeps only the matches.
func Scan(t *table.Table, rs rules.RuleSet) Result {
	res := Result{index: map[string]int{}}
	for _, name := range t.Columns() {
		if _, dup := res.index[name]; dup {
			continue
		}
		if m, ok := Classify(name, rs); ok {
			res.index[name] = len(res.matches)
			res.matches = append(res.matches, m)
		}
	}
	return res
}

// Len returns the number of flagged columns.
func (r Result) Len() int { return len(r.matches) }

// Get returns the match for a column.
func (r Result) Get(column string) (Match, bool) {
	i, ok := r.index[column]
	if !ok {
		return Match{}, false
	}
	return r.matches[i], true
}

// Columns returns flagged column names in table order.
func (r Result) Columns() []string {
	out := make([]string, len(r.matches))
	for i, m := range r.matches {
		out[i] = m.Column
	}
	return out
}

// Matches returns a copy of the matches in table order.
func (r Result) Matches() []Match {
	return append([]Match(nil), r.matches...)
}

// Categories returns column -> category label.
func (r Result) Categories() map[string]string {
	out := make(map[string]string, len(r.matches))
	for _, m := range r.matches {
		out[m.Column] = string(m.Category)
	}
	return out
}

// MarshalJSON encodes the result as an ordered array of matches.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.matches == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.matches)
}
