package samplesheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/liserjrqlxue/NextSeqSampleSheet/internal/catalog"
)

const wantS1 = "# header line\n" +
	"Sample_ID,Sample_Name,I7_Index_ID,index,I5_Index_ID,index2\n" +
	"S1,SampleA,P7_i1,TAAGGCGA,P5_i13,GCGATCTA\n"

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.csv",
		"Plate,SampleID,Index2Name,Name,Index1Name\n"+
			"p1,S1,P5_i13,SampleA,P7_i1\n")
	headers := writeFile(t, dir, "headers.csv", "# header line\n")
	output := filepath.Join(dir, "missing", "dir", "SampleSheet.csv")

	got, err := Create(catalog.AgilentSureSelect, headers, input, output)
	require.NoError(t, err)
	assert.Equal(t, output, got)
	assert.Equal(t, wantS1, readFile(t, output))
}

func TestCreateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.csv",
		"SampleID,Name,Index1Name,Index2Name\n"+
			"S1,SampleA,P7_i1,P5_i13\n"+
			"S2,\"Sample, B\",P7_i12,P5_i20\n")
	headers := writeFile(t, dir, "headers.csv", "[Header]\nIEMFileVersion,4\n\n[Data]\n")

	first, err := Create(catalog.AgilentSureSelect, headers, input, filepath.Join(dir, "a", "out.csv"))
	require.NoError(t, err)
	second, err := Create(catalog.AgilentSureSelect, headers, input, filepath.Join(dir, "b", "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, readFile(t, first), readFile(t, second))
	assert.Contains(t, readFile(t, first), "S2,\"Sample, B\",P7_i12,GGACTCCT,P5_i20,AGGCTTAG\n")
}

func TestCreateFromXLSX(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"SampleID", "Name", "Index1Name", "Index2Name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"S1", "SampleA", "P7_i1", "P5_i13"}))
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())
	headers := writeFile(t, dir, "headers.csv", "# header line\n")
	output := filepath.Join(dir, "out.csv")

	_, err := Create(catalog.AgilentSureSelect, headers, input, output)
	require.NoError(t, err)
	assert.Equal(t, wantS1, readFile(t, output))
}

func TestCreateFailuresWriteNothing(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty name", "SampleID,Name,Index1Name,Index2Name\nS1,,P7_i1,P5_i13\n", ErrEmptyCell},
		{"bogus index", "SampleID,Name,Index1Name,Index2Name\nS1,SampleA,BOGUS,P5_i13\n", ErrInvalidIndex},
		{"missing column", "SampleID,Name,Index1Name\nS1,SampleA,P7_i1\n", ErrMissingColumn},
		{"duplicate", "SampleID,Name,Index1Name,Index2Name\nS1,A,P7_i1,P5_i13\nS1,B,P7_i2,P5_i14\n", ErrDuplicateSample},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			input := writeFile(t, dir, "input.csv", tc.input)
			headers := writeFile(t, dir, "headers.csv", "# header line\n")
			outDir := filepath.Join(dir, "out")
			output := filepath.Join(outDir, "SampleSheet.csv")

			_, err := Create(catalog.AgilentSureSelect, headers, input, output)
			require.ErrorIs(t, err, tc.want)
			assert.NoDirExists(t, outDir)
		})
	}
}
