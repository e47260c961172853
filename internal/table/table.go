package table

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrRaggedColumns   = errors.New("columns have different lengths")
)

// Column is a named sequence of cell values. Values keep whatever type the
// loader produced: CSV cells are strings, typed XLSX cells are float64, bool
// or time.Time, and nil marks a missing value.
type Column struct {
	Name   string
	Values []any
}

func (c Column) clone() Column {
	return Column{Name: c.Name, Values: append([]any(nil), c.Values...)}
}

// Table is an ordered set of equally long columns with unique names. A Table
// is immutable once built; accessors return copies.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a table from columns, copying their values. It rejects
// duplicate names and columns of differing length.
func New(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("%q: %w", c.Name, ErrDuplicateColumn)
		}
		if i == 0 {
			t.rows = len(c.Values)
		} else if len(c.Values) != t.rows {
			return nil, fmt.Errorf("column %q has %d values, want %d: %w", c.Name, len(c.Values), t.rows, ErrRaggedColumns)
		}
		t.index[c.Name] = i
		t.columns = append(t.columns, c.clone())
	}
	return t, nil
}

// FromRecords builds a table from a header and row-major string records.
// Every row must have exactly len(header) fields.
func FromRecords(header []string, rows [][]string) (*Table, error) {
	cols := make([]Column, len(header))
	for j, name := range header {
		cols[j] = Column{Name: name, Values: make([]any, len(rows))}
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, want %d: %w", i+1, len(row), len(header), ErrRaggedColumns)
		}
		for j, v := range row {
			cols[j].Values[i] = v
		}
	}
	return New(cols...)
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.columns) }

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i].clone(), true
}

// ColumnAt returns a copy of the i-th column.
func (t *Table) ColumnAt(i int) Column { return t.columns[i].clone() }

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Values[i]
	}
	return row
}

// Records returns the header and the rows formatted as strings, ready for
// CSV or spreadsheet writers. Nil cells become empty strings.
func (t *Table) Records() ([]string, [][]string) {
	rows := make([][]string, t.rows)
	for i := range rows {
		row := make([]string, len(t.columns))
		for j, c := range t.columns {
			row[j] = FormatValue(c.Values[i])
		}
		rows[i] = row
	}
	return t.Columns(), rows
}

// Equal reports whether both tables have the same column names in the same
// order and identical cell values, including their types.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.rows != o.rows || len(t.columns) != len(o.columns) {
		return false
	}
	for j, c := range t.columns {
		oc := o.columns[j]
		if c.Name != oc.Name {
			return false
		}
		for i := range c.Values {
			if !reflect.DeepEqual(c.Values[i], oc.Values[i]) {
				return false
			}
		}
	}
	return true
}

// FormatValue renders a cell value for text output.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.Equal(x.Truncate(24 * time.Hour)) {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
