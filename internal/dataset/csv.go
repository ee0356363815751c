package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvLoader) Load(path string) (*Dataset, error) { return LoadCSV(path) }

// LoadCSV reads a comma-delimited file (tab-delimited for .tsv) with a header row.
// Every record must have as many fields as the header.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	br := bufio.NewReader(f)
	skipBOM(br)
	r := csv.NewReader(br)
	r.TrimLeadingSpace = true
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		r.Comma = '\t'
	}

	var records [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Path: name, Line: pe.Line, Err: pe.Err}
			}
			return nil, &ParseError{Path: name, Line: len(records) + 1, Err: err}
		}
		records = append(records, rec)
	}
	return fromRecords(name, records)
}

// skipBOM drops a leading UTF-8 byte-order mark, as written by spreadsheet exports.
func skipBOM(br *bufio.Reader) {
	if ch, _, err := br.ReadRune(); err == nil && ch != '\ufeff' {
		_ = br.UnreadRune()
	}
}
