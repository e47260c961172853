package redact

import (
	"fmt"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/redactyl/colredact/internal/classify"
	"github.com/redactyl/colredact/internal/table"
)

// MaskToken replaces every cell of a redacted column.
const MaskToken = "[REDACTED]"

// Columns returns a copy of t in which every cell of the named columns is
// MaskToken. Names not present in t are ignored. Other columns keep their
// values and types; t itself is never modified.
func Columns(t *table.Table, names []string) *table.Table {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	cols := make([]table.Column, t.NumCols())
	for i := range cols {
		c := t.ColumnAt(i)
		if want[c.Name] {
			for j := range c.Values {
				c.Values[j] = MaskToken
			}
		}
		cols[i] = c
	}
	out, err := table.New(cols...)
	if err != nil {
		// t already satisfied the table invariants and the shape is unchanged.
		panic(fmt.Sprintf("redact: rebuilding table: %v", err))
	}
	return out
}

// WouldChange reports whether redacting names would alter any cell of t.
func WouldChange(t *table.Table, names []string) bool {
	for _, n := range names {
		c, ok := t.Column(n)
		if !ok {
			continue
		}
		for _, v := range c.Values {
			if s, isStr := v.(string); !isStr || s != MaskToken {
				return true
			}
		}
	}
	return false
}

// Select resolves a user selection against the columns of t. Each selector is
// either an exact column name or a doublestar glob (e.g. "*_id"); when
// allFlagged is set every column in res is included as well. The returned
// names follow table order and contain no duplicates. Selectors that match
// nothing are returned in unmatched.
func Select(t *table.Table, res classify.Result, selectors []string, allFlagged bool) (names, unmatched []string, err error) {
	picked := map[string]bool{}
	if allFlagged {
		for _, c := range res.Columns() {
			picked[c] = true
		}
	}
	columns := t.Columns()
	for _, sel := range selectors {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}
		if t.Has(sel) {
			picked[sel] = true
			continue
		}
		if !doublestar.ValidatePattern(sel) {
			return nil, nil, fmt.Errorf("invalid column pattern %q", sel)
		}
		hit := false
		for _, c := range columns {
			ok, err := doublestar.Match(sel, c)
			if err != nil {
				return nil, nil, fmt.Errorf("matching %q: %w", sel, err)
			}
			if ok {
				picked[c] = true
				hit = true
			}
		}
		if !hit {
			unmatched = append(unmatched, sel)
		}
	}
	for _, c := range columns {
		if picked[c] {
			names = append(names, c)
		}
	}
	return names, unmatched, nil
}
