package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Invariants(t *testing.T) {
	_, err := New(
		Column{Name: "a", Values: []any{1, 2}},
		Column{Name: "a", Values: []any{3, 4}},
	)
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = New(
		Column{Name: "a", Values: []any{1, 2}},
		Column{Name: "b", Values: []any{3}},
	)
	assert.ErrorIs(t, err, ErrRaggedColumns)

	empty, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumCols())
	assert.Equal(t, 0, empty.NumRows())
}

func TestNew_CopiesInput(t *testing.T) {
	vals := []any{"x", "y"}
	tb, err := New(Column{Name: "a", Values: vals})
	require.NoError(t, err)
	vals[0] = "changed"

	c, ok := tb.Column("a")
	require.True(t, ok)
	assert.Equal(t, "x", c.Values[0])

	c.Values[1] = "changed"
	again, _ := tb.Column("a")
	assert.Equal(t, "y", again.Values[1])
}

func TestFromRecords(t *testing.T) {
	tb, err := FromRecords([]string{"Name", "Age"}, [][]string{{"Ann", "31"}, {"Bob", "40"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, tb.Columns())
	assert.Equal(t, 2, tb.NumRows())
	assert.Equal(t, []any{"Bob", "40"}, tb.Row(1))
	assert.True(t, tb.Has("Age"))
	assert.False(t, tb.Has("age"))

	_, err = FromRecords([]string{"a", "b"}, [][]string{{"1"}})
	assert.ErrorIs(t, err, ErrRaggedColumns)
}

func TestRecords_FormatsValues(t *testing.T) {
	when := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tb, err := New(
		Column{Name: "n", Values: []any{1.5, 1e21}},
		Column{Name: "d", Values: []any{when, when.Add(90 * time.Minute)}},
		Column{Name: "b", Values: []any{true, nil}},
	)
	require.NoError(t, err)
	header, rows := tb.Records()
	assert.Equal(t, []string{"n", "d", "b"}, header)
	assert.Equal(t, [][]string{
		{"1.5", "2024-03-01", "true"},
		{"1000000000000000000000", "2024-03-01T01:30:00Z", ""},
	}, rows)
}

func TestEqual(t *testing.T) {
	a, _ := New(Column{Name: "x", Values: []any{1, "1"}})
	b, _ := New(Column{Name: "x", Values: []any{1, "1"}})
	c, _ := New(Column{Name: "x", Values: []any{"1", "1"}})
	d, _ := New(Column{Name: "y", Values: []any{1, "1"}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "value types matter")
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}
