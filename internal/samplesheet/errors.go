package samplesheet

import "errors"

var (
	// ErrEmptyCell reports a missing value in a required cell.
	ErrEmptyCell = errors.New("samplesheet: empty cell")
	// ErrInvalidIndex reports an index name absent from the catalog.
	ErrInvalidIndex = errors.New("samplesheet: invalid index")
	// ErrMissingColumn reports a required column absent from the header.
	ErrMissingColumn = errors.New("samplesheet: missing column")
	// ErrDuplicateSample reports a SampleID used by more than one row.
	ErrDuplicateSample = errors.New("samplesheet: duplicate sample")
)
