package samplesheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Assemble writes rows as CSV and prepends the contents of headersFile,
// producing outputFile. Missing parent directories are created. The table
// goes to a temporary file next to outputFile first and is removed once
// copied; a partially written outputFile is not rolled back.
func Assemble(rows []ResolvedRow, headersFile, outputFile string) (string, error) {
	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmpFile := filepath.Join(dir, "."+filepath.Base(outputFile)+"."+uuid.NewString()+".tmp.csv")
	if err := writeTable(tmpFile, rows); err != nil {
		os.Remove(tmpFile)
		return "", err
	}

	log.Printf("[INFO] -- Concatenating '%s' with '%s'...", headersFile, outputFile)
	err := concatenate(outputFile, headersFile, tmpFile)
	if rmErr := os.Remove(tmpFile); rmErr != nil && err == nil {
		err = fmt.Errorf("remove temporary table: %w", rmErr)
	}
	if err != nil {
		return "", err
	}
	log.Printf("[INFO] -- Finished concatenation")
	return outputFile, nil
}

// WriteTable writes the output header row followed by rows.
func WriteTable(w io.Writer, rows []ResolvedRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OutputColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTable(path string, rows []ResolvedRow) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteTable(file, rows)
}

// concatenate writes the bytes of each input, in order, to dst.
// All inputs are opened before dst is created.
func concatenate(dst string, inputs ...string) (err error) {
	var readers []io.Reader
	for _, in := range inputs {
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		readers = append(readers, f)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()
	_, err = io.Copy(out, io.MultiReader(readers...))
	return err
}
