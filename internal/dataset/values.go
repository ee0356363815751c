package dataset

import (
	"strconv"
	"strings"
)

// Kind is the inferred value kind of a column.
type Kind int

const (
	Categorical Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

// IsMissing reports whether a raw value is a missing marker ("" or "?").
func IsMissing(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "?"
}

// ParseFloat parses a raw value as a number. Missing markers do not parse.
func ParseFloat(v string) (float64, bool) {
	if IsMissing(v) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Kind reports Numeric when the column has at least one non-missing value and every
// non-missing value parses as a number.
func (d *Dataset) Kind(col string) Kind {
	seen := 0
	for _, v := range d.raw(col) {
		if IsMissing(v) {
			continue
		}
		if _, ok := ParseFloat(v); !ok {
			return Categorical
		}
		seen++
	}
	if seen == 0 {
		return Categorical
	}
	return Numeric
}

// Floats parses a column as numbers. valid[i] is false where the value is missing or not numeric.
func (d *Dataset) Floats(col string) (vals []float64, valid []bool) {
	raw := d.raw(col)
	vals = make([]float64, len(raw))
	valid = make([]bool, len(raw))
	for i, v := range raw {
		vals[i], valid[i] = ParseFloat(v)
	}
	return vals, valid
}

// Codes maps each distinct raw value to an integer code assigned in first-seen order.
// labels[c] is the raw value behind code c.
func (d *Dataset) Codes(col string) (codes []float64, labels []string) {
	raw := d.raw(col)
	index := make(map[string]int)
	codes = make([]float64, len(raw))
	for i, v := range raw {
		c, ok := index[v]
		if !ok {
			c = len(labels)
			index[v] = c
			labels = append(labels, v)
		}
		codes[i] = float64(c)
	}
	return codes, labels
}
