package samplesheet

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/NextSeqSampleSheet/internal/catalog"
)

// naValues are cell contents read as missing, besides blank cells.
var naValues = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true, "-1.#QNAN": true,
	"-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true, "<NA>": true,
	"N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// missing reports whether a cell holds no value.
func missing(cell string) bool {
	cell = strings.TrimSpace(cell)
	return cell == "" || naValues[cell]
}

// Validate checks rows against cat. Checks run in a fixed order and the
// first failure is returned: empty cells, duplicate sample IDs, then unknown
// Index1Name and Index2Name values.
func Validate(rows []SampleRow, cat *catalog.Catalog) error {
	for _, row := range rows {
		for _, cell := range []struct{ col, val string }{
			{ColSampleID, row.SampleID},
			{ColName, row.Name},
			{ColIndex1Name, row.Index1Name},
			{ColIndex2Name, row.Index2Name},
		} {
			if missing(cell.val) {
				return fmt.Errorf("%w: %s at line %d", ErrEmptyCell, cell.col, row.Line)
			}
		}
	}

	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		if prev, ok := seen[row.SampleID]; ok {
			return fmt.Errorf("%w: %s at lines %d and %d", ErrDuplicateSample, row.SampleID, prev, row.Line)
		}
		seen[row.SampleID] = row.Line
	}

	if err := checkIndexes(rows, cat, ColIndex1Name, func(r SampleRow) string { return r.Index1Name }); err != nil {
		return err
	}
	return checkIndexes(rows, cat, ColIndex2Name, func(r SampleRow) string { return r.Index2Name })
}

func checkIndexes(rows []SampleRow, cat *catalog.Catalog, col string, name func(SampleRow) string) error {
	for _, row := range rows {
		if !cat.Contains(name(row)) {
			return fmt.Errorf("%w: %s %q at line %d", ErrInvalidIndex, col, name(row), row.Line)
		}
	}
	return nil
}
