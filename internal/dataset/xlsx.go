package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

func (xlsxLoader) Load(path string) (*Dataset, error) { return LoadXLSX(path, "") }

// LoadXLSX reads a worksheet whose first row is the header. An empty sheet name selects
// the first sheet. Rows shorter than the header are padded with empty cells.
func LoadXLSX(path, sheet string) (*Dataset, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: name, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ParseError{Path: name, Err: fmt.Errorf("workbook has no sheets")}
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Path: name, Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return fromRecords(name, nil)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) > width {
			return nil, &ParseError{Path: name, Line: i + 1, Err: fmt.Errorf("expected %d fields, got %d", width, len(row))}
		}
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return fromRecords(name, rows)
}
