package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/redactyl/colredact/internal/table"
)

// Format identifies a supported file format.
type Format string

const (
	CSV  Format = "csv"
	TSV  Format = "tsv"
	XLSX Format = "xlsx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("file has no header row")
)

// Options tune reading and writing. Zero values mean defaults.
type Options struct {
	Delimiter rune   // CSV only; ',' by default, '\t' for .tsv
	Sheet     string // XLSX only; first sheet by default
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSV, nil
	case ".tsv", ".tab":
		return TSV, nil
	case ".xlsx", ".xlsm":
		return XLSX, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Load opens path and reads it as a table.
func Load(path string, opts Options) (*table.Table, Format, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	t, err := Read(f, format, opts)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return t, format, nil
}

// Read parses r in the given format.
func Read(r io.Reader, format Format, opts Options) (*table.Table, error) {
	switch format {
	case CSV, TSV:
		return readCSV(r, delimiter(format, opts))
	case XLSX:
		return readXLSX(r, opts.Sheet)
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}

// Save writes t to path in the given format.
func Save(path string, t *table.Table, format Format, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t, format, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Write encodes t to w in the given format.
func Write(w io.Writer, t *table.Table, format Format, opts Options) error {
	switch format {
	case CSV, TSV:
		return writeCSV(w, t, delimiter(format, opts))
	case XLSX:
		return writeXLSX(w, t, opts.Sheet)
	}
	return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}

// OutputPath derives the destination for a processed copy of src:
// <name>_redacted.<ext> when columns were masked, <name>_reviewed.<ext>
// otherwise. When dir is empty the copy sits next to src.
func OutputPath(src, dir string, redacted bool) string {
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(filepath.Base(src), ext)
	suffix := "_reviewed"
	if redacted {
		suffix = "_redacted"
	}
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base+suffix+ext)
}

func delimiter(format Format, opts Options) rune {
	if opts.Delimiter != 0 {
		return opts.Delimiter
	}
	if format == TSV {
		return '\t'
	}
	return ','
}

func readCSV(r io.Reader, comma rune) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	header := records[0]
	rows := records[1:]
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", i+2, len(header), len(row))
		}
	}
	return table.FromRecords(NormalizeHeader(header), padRows(rows, len(header)))
}

func writeCSV(w io.Writer, t *table.Table, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	header, rows := t.Records()
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func readXLSX(r io.Reader, sheet string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyFile
		}
		sheet = sheets[0]
	}
	records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	// GetRows drops trailing empty cells, so the widest row sets the width.
	width := 0
	for _, row := range records {
		if len(row) > width {
			width = len(row)
		}
	}
	header := make([]string, width)
	copy(header, records[0])
	header = NormalizeHeader(header)

	cols := make([]table.Column, width)
	for j, name := range header {
		cols[j] = table.Column{Name: name, Values: make([]any, len(records)-1)}
	}
	for i, row := range records[1:] {
		for j := range cols {
			raw := ""
			if j < len(row) {
				raw = row[j]
			}
			v, err := cellValue(f, sheet, j+1, i+2, raw)
			if err != nil {
				return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
			}
			cols[j].Values[i] = v
		}
	}
	return table.New(cols...)
}

// cellValue types a raw cell value: numbers become float64 (time.Time when
// the cell carries a date format), booleans become bool and everything else
// stays a string.
func cellValue(f *excelize.File, sheet string, col, row int, raw string) (any, error) {
	if raw == "" {
		return "", nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return nil, err
	}
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return t, nil
		}
		return raw, nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw, nil
		}
		if isDateCell(f, sheet, cell) {
			if t, err := excelize.ExcelDateToTime(n, false); err == nil {
				return t, nil
			}
		}
		return n, nil
	}
	return raw, nil
}

func isDateCell(f *excelize.File, sheet, cell string) bool {
	idx, err := f.GetCellStyle(sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		code := strings.ToLower(*style.CustomNumFmt)
		return strings.Contains(code, "yy") || strings.Contains(code, "dd") ||
			strings.Contains(code, "mmm") || strings.Contains(code, "h:mm")
	}
	// built-in date and time formats
	return (style.NumFmt >= 14 && style.NumFmt <= 22) || (style.NumFmt >= 45 && style.NumFmt <= 47)
}

func writeXLSX(w io.Writer, t *table.Table, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	name := f.GetSheetName(0)
	if sheet != "" && sheet != name {
		if err := f.SetSheetName(name, sheet); err != nil {
			return err
		}
		name = sheet
	}
	header := make([]any, t.NumCols())
	for i, c := range t.Columns() {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := t.Row(i)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// NormalizeHeader makes column names unique and non-empty: blank names
// become "Unnamed: <index>" and repeated names get ".1", ".2", ... suffixes.
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for n := 1; seen[name]; n++ {
			name = h + "." + strconv.Itoa(n)
		}
		seen[name] = true
		out[i] = name
	}
	return out
}

func padRows(rows [][]string, width int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == width {
			out[i] = row
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}
