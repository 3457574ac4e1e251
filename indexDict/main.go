package main

import (
	"flag"
	"log"
	"os"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	simple_util "github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/NextSeqSampleSheet/internal/catalog"
)

var (
	input = flag.String(
		"input",
		"",
		"tab separated index file, two columns [name, sequence], no header",
	)
	name = flag.String(
		"name",
		"agilentSureSelect",
		"variable name of the printed table",
	)
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.Usage()
		log.Printf("-input required")
		os.Exit(2)
	}

	indexes, err := loadIndexes(*input)
	simpleUtil.CheckErr(err)
	simpleUtil.CheckErr(catalog.WriteLiteral(os.Stdout, *name, indexes))
}

func loadIndexes(path string) ([]catalog.Index, error) {
	return catalog.FromRows(simple_util.File2Slice(path, "\t"))
}
