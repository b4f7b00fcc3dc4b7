// Package tabread loads the two input sheets of a forecast run from CSV:
// the subject summary and the drug dispensation quantities. Parsing is
// tolerant at the cell level (parsers default) and strict at the sheet level
// (missing required columns fail fast).
package tabread

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// sheet provides header-indexed access to the rows of one CSV file.
type sheet struct {
	file   *os.File
	reader *csv.Reader
	colIdx map[string]int
	rowNum int64
}

// openSheet opens a CSV file, reads its header, and verifies that every
// required column is present. Header matching trims whitespace but is
// otherwise exact against the trial export's column names.
func openSheet(path string, required []string) (*sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, col := range required {
		if _, ok := colIdx[col]; !ok {
			f.Close()
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return &sheet{file: f, reader: r, colIdx: colIdx}, nil
}

// next reads one data row, or returns done=true at EOF.
func (s *sheet) next() (row []string, done bool, err error) {
	rec, err := s.reader.Read()
	if err == io.EOF {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read csv row %d: %w", s.rowNum+1, err)
	}
	s.rowNum++
	return rec, false, nil
}

// get returns the trimmed cell under the named column, or "" when the column
// is absent or the row is short.
func (s *sheet) get(row []string, col string) string {
	i, ok := s.colIdx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (s *sheet) close() error {
	return s.file.Close()
}
