// Package dataset loads tabular automobile records into read-only columns.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Dataset maps column names to equal-length value sequences. It is not modified after load.
type Dataset struct {
	name   string
	header []string
	cols   map[string][]string
	rows   int
}

// fromRecords builds a Dataset from parsed records whose first record is the header.
// The first data record is dropped from every column, mirroring how the dataset has
// always been read: a file with R records (header included) yields R-2 values per column.
func fromRecords(name string, records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, &ParseError{Path: name, Err: errors.New("missing header row")}
	}
	header := make([]string, len(records[0]))
	cols := make(map[string][]string, len(header))
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, &ParseError{Path: name, Line: 1, Err: fmt.Errorf("empty column name at position %d", i+1)}
		}
		if _, dup := cols[h]; dup {
			return nil, &ParseError{Path: name, Line: 1, Err: fmt.Errorf("duplicate column %q", h)}
		}
		header[i] = h
		cols[h] = nil
	}

	data := records[1:]
	if len(data) > 0 {
		data = data[1:]
	}
	for i, h := range header {
		vals := make([]string, len(data))
		for r, rec := range data {
			if len(rec) != len(header) {
				// +3: header line, dropped row, 1-based
				return nil, &ParseError{Path: name, Line: r + 3, Err: fmt.Errorf("expected %d fields, got %d", len(header), len(rec))}
			}
			vals[r] = rec[i]
		}
		cols[h] = vals
	}
	return &Dataset{name: name, header: header, cols: cols, rows: len(data)}, nil
}

// Name is the base name of the file the dataset was loaded from.
func (d *Dataset) Name() string { return d.name }

// Columns returns the column names in header order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.header))
	copy(out, d.header)
	return out
}

// Has reports whether the dataset contains the named column.
func (d *Dataset) Has(col string) bool {
	_, ok := d.cols[col]
	return ok
}

// Len is the number of values held by every column.
func (d *Dataset) Len() int { return d.rows }

// Values returns a copy of the raw values of a column.
func (d *Dataset) Values(col string) ([]string, bool) {
	v, ok := d.cols[col]
	if !ok {
		return nil, false
	}
	out := make([]string, len(v))
	copy(out, v)
	return out, true
}

// Row returns the i-th row in header order.
func (d *Dataset) Row(i int) []string {
	if i < 0 || i >= d.rows {
		return nil
	}
	out := make([]string, len(d.header))
	for j, h := range d.header {
		out[j] = d.cols[h][i]
	}
	return out
}

// raw exposes a column without copying; callers must not modify it.
func (d *Dataset) raw(col string) []string { return d.cols[col] }
