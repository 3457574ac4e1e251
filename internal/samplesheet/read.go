package samplesheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile parses an input sheet. Files ending in .xlsx or .xlsm are read
// from their first worksheet, everything else is read as CSV.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(path, f)
}

// ReadCSV parses CSV from r. A leading UTF-8 BOM is dropped.
func ReadCSV(path string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1

	var table *Table
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line, _ := cr.FieldPos(0)
		if table == nil {
			table = newTable(path, record)
			continue
		}
		if err := table.add(line, record); err != nil {
			return nil, err
		}
	}
	if table == nil {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	return table, nil
}

func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheetName, err)
	}

	var table *Table
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if table == nil {
			table = newTable(path, row)
			continue
		}
		if err := table.add(i+1, row); err != nil {
			return nil, err
		}
	}
	if table == nil {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	return table, nil
}

func newTable(path string, header []string) *Table {
	t := &Table{Path: path, Header: make([]string, len(header))}
	for i, name := range header {
		t.Header[i] = strings.TrimSpace(name)
	}
	return t
}

// add appends a record, padding short records with empty cells.
func (t *Table) add(line int, record []string) error {
	if len(record) > len(t.Header) {
		return fmt.Errorf("%s: line %d: %d fields, header has %d", t.Path, line, len(record), len(t.Header))
	}
	row := make([]string, len(t.Header))
	copy(row, record)
	t.Records = append(t.Records, row)
	t.Lines = append(t.Lines, line)
	return nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Samples selects the required columns, in whatever position they appear.
// Other columns are dropped.
func (t *Table) Samples() ([]SampleRow, error) {
	pos := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		if _, ok := pos[name]; !ok {
			pos[name] = i
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := pos[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s not found in header of %s", ErrMissingColumn, strings.Join(missing, ", "), t.Path)
	}

	rows := make([]SampleRow, len(t.Records))
	for i, record := range t.Records {
		rows[i] = SampleRow{
			Line:       t.Lines[i],
			SampleID:   record[pos[ColSampleID]],
			Name:       record[pos[ColName]],
			Index1Name: record[pos[ColIndex1Name]],
			Index2Name: record[pos[ColIndex2Name]],
		}
	}
	return rows, nil
}
