package samplesheet

// Input column names.
const (
	ColSampleID   = "SampleID"
	ColName       = "Name"
	ColIndex1Name = "Index1Name"
	ColIndex2Name = "Index2Name"
)

// RequiredColumns are the input columns the sheet must carry.
var RequiredColumns = []string{ColSampleID, ColName, ColIndex1Name, ColIndex2Name}

// OutputColumns is the header row of the resolved table.
var OutputColumns = []string{"Sample_ID", "Sample_Name", "I7_Index_ID", "index", "I5_Index_ID", "index2"}

// Table is a parsed input sheet before column selection.
type Table struct {
	Path    string
	Header  []string
	Records [][]string
	Lines   []int // source line of each record
}

// SampleRow is one input sample with its index names.
type SampleRow struct {
	Line       int
	SampleID   string
	Name       string
	Index1Name string
	Index2Name string
}

// ResolvedRow is one output sample with both index sequences filled in.
type ResolvedRow struct {
	SampleID   string
	SampleName string
	I7IndexID  string
	Index      string
	I5IndexID  string
	Index2     string
}

func (r ResolvedRow) record() []string {
	return []string{r.SampleID, r.SampleName, r.I7IndexID, r.Index, r.I5IndexID, r.Index2}
}
