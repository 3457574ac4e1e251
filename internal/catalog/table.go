package catalog

import (
	"fmt"
	"io"
	"strings"
)

// FromRows converts two-column rows (name, sequence) into indexes.
// Blank rows are skipped; cells are trimmed and sequences upper-cased.
func FromRows(rows [][]string) ([]Index, error) {
	var indexes []Index
	seen := make(map[string]int)
	for i, row := range rows {
		if len(row) == 0 || len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) != 2 {
			return nil, fmt.Errorf("row %d: want 2 columns, got %d", i+1, len(row))
		}
		name := strings.TrimSpace(row[0])
		seq := strings.ToUpper(strings.TrimSpace(row[1]))
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("row %d: index %q already defined at row %d", i+1, name, prev)
		}
		seen[name] = i + 1
		indexes = append(indexes, Index{Name: name, Sequence: seq})
	}
	if _, err := New(indexes); err != nil {
		return nil, err
	}
	return indexes, nil
}

// WriteLiteral prints indexes as a Go composite literal named varName.
func WriteLiteral(w io.Writer, varName string, indexes []Index) error {
	if _, err := fmt.Fprintf(w, "var %s = []Index{\n", varName); err != nil {
		return err
	}
	for _, idx := range indexes {
		if _, err := fmt.Fprintf(w, "\t{%q, %q},\n", idx.Name, idx.Sequence); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
