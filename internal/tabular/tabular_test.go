package tabular

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/redactyl/colredact/internal/table"
)

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.csv":       CSV,
		"dir/B.CSV":   CSV,
		"data.tsv":    TSV,
		"book.xlsx":   XLSX,
		"macros.xlsm": XLSX,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := DetectFormat("report.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadCSV(t *testing.T) {
	in := "Name,DOB,,Name\nAnn,1990-01-01,x,A2\nBob\n"
	tb, err := Read(strings.NewReader(in), CSV, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "DOB", "Unnamed: 2", "Name.1"}, tb.Columns())
	assert.Equal(t, 2, tb.NumRows())
	assert.Equal(t, []any{"Bob", "", "", ""}, tb.Row(1), "short rows are padded")
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := Read(strings.NewReader(""), CSV, Options{})
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = Read(strings.NewReader("a,b\n1,2,3\n"), CSV, Options{})
	assert.Error(t, err)

	_, err = Read(strings.NewReader("a"), Format("parquet"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCSV_Delimiters(t *testing.T) {
	tb, err := Read(strings.NewReader("a\tb\n1\t2\n"), TSV, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.Columns())

	tb, err = Read(strings.NewReader("a;b\n1;2\n"), CSV, Options{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []any{"1", "2"}, tb.Row(0))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tb, CSV, Options{Delimiter: ';'}))
	assert.Equal(t, "a;b\n1;2\n", buf.String())
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t,
		[]string{"a", "a.1", "a.2", "Unnamed: 3", "b"},
		NormalizeHeader([]string{"a", "a", "a", " ", "b"}))
	// a generated suffix that collides with a real column is skipped
	assert.Equal(t,
		[]string{"a", "a.1", "a.2"},
		NormalizeHeader([]string{"a", "a.1", "a"}))
}

func TestXLSX_RoundTrip(t *testing.T) {
	tb, err := table.New(
		table.Column{Name: "Name", Values: []any{"Ann", "Bob"}},
		table.Column{Name: "Amount", Values: []any{"10", "20"}},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, Save(path, tb, XLSX, Options{Sheet: "Staff"}))

	got, format, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, XLSX, format)
	assert.True(t, tb.Equal(got))

	named, _, err := Load(path, Options{Sheet: "Staff"})
	require.NoError(t, err)
	assert.Equal(t, tb.Columns(), named.Columns())

	_, _, err = Load(path, Options{Sheet: "Missing"})
	assert.Error(t, err)
}

func TestXLSX_KeepsCellTypes(t *testing.T) {
	joined := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	src := excelize.NewFile()
	for cell, v := range map[string]any{
		"A1": "Name", "B1": "Salary", "C1": "Active", "D1": "Joined",
		"A2": "Ann", "B2": 1234.5, "C2": true, "D2": joined,
	} {
		require.NoError(t, src.SetCellValue("Sheet1", cell, v))
	}
	buf, err := src.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, src.Close())

	tb, err := Read(bytes.NewReader(buf.Bytes()), XLSX, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, tb.NumRows())
	assert.Equal(t, []any{"Ann", 1234.5, true}, tb.Row(0)[:3])
	got, ok := tb.Row(0)[3].(time.Time)
	require.True(t, ok, "date cell loads as time.Time, got %T", tb.Row(0)[3])
	assert.True(t, joined.Equal(got))

	var out bytes.Buffer
	require.NoError(t, Write(&out, tb, XLSX, Options{}))
	written := out.Bytes()
	wb, err := excelize.OpenReader(bytes.NewReader(written))
	require.NoError(t, err)
	defer wb.Close()

	typ, err := wb.GetCellType("Sheet1", "B2")
	require.NoError(t, err)
	assert.Contains(t, []excelize.CellType{excelize.CellTypeUnset, excelize.CellTypeNumber}, typ, "numeric cell written as a number")
	v, err := wb.GetCellValue("Sheet1", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.5", v)

	typ, err = wb.GetCellType("Sheet1", "C2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeBool, typ)

	again, err := Read(bytes.NewReader(written), XLSX, Options{})
	require.NoError(t, err)
	assert.True(t, tb.Equal(again))
}

func TestCSV_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(src, []byte("Name,Salary\nAnn,100\n"), 0o644))

	tb, format, err := Load(src, Options{})
	require.NoError(t, err)
	assert.Equal(t, CSV, format)

	dst := OutputPath(src, "", true)
	require.NoError(t, Save(dst, tb, format, Options{}))
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "Name,Salary\nAnn,100\n", string(b))

	_, _, err = Load(filepath.Join(dir, "missing.csv"), Options{})
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "staff_redacted.csv"), OutputPath(filepath.Join("data", "staff.csv"), "", true))
	assert.Equal(t, filepath.Join("data", "staff_reviewed.xlsx"), OutputPath(filepath.Join("data", "staff.xlsx"), "", false))
	assert.Equal(t, filepath.Join("out", "staff_redacted.csv"), OutputPath(filepath.Join("data", "staff.csv"), "out", true))
}
