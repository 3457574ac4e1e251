package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	simple_util "github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/NextSeqSampleSheet/internal/catalog"
	"github.com/liserjrqlxue/NextSeqSampleSheet/internal/samplesheet"
)

var (
	inputFile = flag.String(
		"input-file",
		"",
		"Path to the input file to process (CSV, or XLSX)",
	)
	outputFile = flag.String(
		"output-file",
		"",
		"Path to the output file",
	)
	headersFile = flag.String(
		"headers-file",
		"",
		"Path to the file with the headers that will be added to the output file (in CSV format)",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default stdout",
	)
)

func main() {
	flag.Parse()
	if *inputFile == "" || *outputFile == "" || *headersFile == "" {
		flag.Usage()
		log.Printf("--input-file, --output-file and --headers-file required")
		os.Exit(2)
	}
	os.Exit(run(os.Stdout))
}

// run executes one conversion, logging to w unless -log is set, and returns
// the process exit code.
func run(w io.Writer) int {
	log.SetOutput(w)
	log.SetFlags(log.Ldate | log.Ltime)
	if *logFile != "" {
		logF, err := os.Create(*logFile)
		simpleUtil.CheckErr(err)
		defer simpleUtil.DeferClose(logF)
		log.SetOutput(logF)
	}

	log.Printf("[INFO] -- Starting %s", os.Args[0])
	if err := createSampleSheet(*inputFile, *headersFile, *outputFile); err != nil {
		log.Printf("[ERROR] -- %s", describe(err, catalog.AgilentSureSelect))
		return 1
	}
	log.Printf("[INFO] -- Finished %s", os.Args[0])
	return 0
}

func createSampleSheet(input, headers, output string) error {
	for _, path := range []string{input, headers} {
		if !simple_util.FileExists(path) {
			return fmt.Errorf("file not found: %s", path)
		}
	}
	_, err := samplesheet.Create(catalog.AgilentSureSelect, headers, input, output)
	return err
}

// describe turns a pipeline error into the one-line message shown to users.
func describe(err error, cat *catalog.Catalog) string {
	switch {
	case errors.Is(err, samplesheet.ErrEmptyCell):
		return fmt.Sprintf("[CSV FORMAT] The CSV file contains cells with empty values. The error message is: %v", err)
	case errors.Is(err, samplesheet.ErrInvalidIndex):
		return fmt.Sprintf(
			"[CSV FORMAT] The CSV file contains indexes not defined in the pipeline, the valid indexes are: %s. The error message is: %v",
			strings.Join(cat.Names(), ", "), err,
		)
	case errors.Is(err, samplesheet.ErrMissingColumn):
		return fmt.Sprintf(
			"[CSV FORMAT] The CSV file must contain the following column names: %s. The error message is: %v",
			strings.Join(samplesheet.RequiredColumns, ", "), err,
		)
	case errors.Is(err, samplesheet.ErrDuplicateSample):
		return fmt.Sprintf("[CSV FORMAT] The CSV file contains duplicate sample IDs. The error message is: %v", err)
	default:
		return fmt.Sprintf("Error in execution! %v", err)
	}
}
