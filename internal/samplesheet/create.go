package samplesheet

import (
	"log"

	"github.com/liserjrqlxue/NextSeqSampleSheet/internal/catalog"
)

// Create builds the sequencer sample sheet at outputFile from inputFile,
// resolving index names through cat and prepending headersFile.
// Nothing is written unless the input passes validation.
func Create(cat *catalog.Catalog, headersFile, inputFile, outputFile string) (string, error) {
	log.Printf("[INFO] -- Creating output file...")

	table, err := ReadFile(inputFile)
	if err != nil {
		return "", err
	}
	rows, err := table.Samples()
	if err != nil {
		return "", err
	}
	if err := Validate(rows, cat); err != nil {
		return "", err
	}

	outputFile, err = Assemble(Resolve(rows, cat), headersFile, outputFile)
	if err != nil {
		return "", err
	}
	log.Printf("[INFO] -- Output file saved to '%s'", outputFile)
	return outputFile, nil
}
