package samplesheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liserjrqlxue/NextSeqSampleSheet/internal/catalog"
)

func TestResolve(t *testing.T) {
	rows := []SampleRow{{SampleID: "S1", Name: "SampleA", Index1Name: "P7_i1", Index2Name: "P5_i13"}}
	got := Resolve(rows, catalog.AgilentSureSelect)
	assert.Equal(t, []ResolvedRow{{
		SampleID:   "S1",
		SampleName: "SampleA",
		I7IndexID:  "P7_i1",
		Index:      "TAAGGCGA",
		I5IndexID:  "P5_i13",
		Index2:     "GCGATCTA",
	}}, got)
}

func TestResolveUsesCatalogForEveryIndex(t *testing.T) {
	cat := catalog.AgilentSureSelect
	names := cat.Names()
	var rows []SampleRow
	for i, name := range names {
		rows = append(rows, SampleRow{SampleID: name, Name: name, Index1Name: name, Index2Name: names[len(names)-1-i]})
	}
	for i, row := range Resolve(rows, cat) {
		want1, _ := cat.Lookup(rows[i].Index1Name)
		want2, _ := cat.Lookup(rows[i].Index2Name)
		assert.Equal(t, want1, row.Index)
		assert.Equal(t, want2, row.Index2)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []ResolvedRow{{"S1", "SampleA", "P7_i1", "TAAGGCGA", "P5_i13", "GCGATCTA"}}
	require.NoError(t, WriteTable(&buf, rows))
	assert.Equal(t,
		"Sample_ID,Sample_Name,I7_Index_ID,index,I5_Index_ID,index2\n"+
			"S1,SampleA,P7_i1,TAAGGCGA,P5_i13,GCGATCTA\n",
		buf.String())
}
