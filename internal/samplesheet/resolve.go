package samplesheet

import "github.com/liserjrqlxue/NextSeqSampleSheet/internal/catalog"

// Resolve maps validated rows to the output schema, filling in the index
// sequences from cat.
func Resolve(rows []SampleRow, cat *catalog.Catalog) []ResolvedRow {
	out := make([]ResolvedRow, len(rows))
	for i, row := range rows {
		index, _ := cat.Lookup(row.Index1Name)
		index2, _ := cat.Lookup(row.Index2Name)
		out[i] = ResolvedRow{
			SampleID:   row.SampleID,
			SampleName: row.Name,
			I7IndexID:  row.Index1Name,
			Index:      index,
			I5IndexID:  row.Index2Name,
			Index2:     index2,
		}
	}
	return out
}
