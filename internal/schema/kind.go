package schema

import (
	"fmt"
	"strings"
)

// ChartKind selects the renderer used for a figure.
type ChartKind int

const (
	Scatter ChartKind = iota + 1
	Bar
	Line
	Histogram
)

var kindNames = map[ChartKind]string{
	Scatter:   "scatter",
	Bar:       "bar",
	Line:      "line",
	Histogram: "histogram",
}

// Kinds returns every supported chart kind.
func Kinds() []ChartKind {
	return []ChartKind{Scatter, Bar, Line, Histogram}
}

func (k ChartKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ChartKind(%d)", int(k))
}

// NeedsComparisons reports whether the kind plots the primary column against others.
// Histogram is the only kind drawn from the primary column alone.
func (k ChartKind) NeedsComparisons() bool {
	return k != Histogram
}

// ParseChartKind resolves a kind name (case-insensitive). "histo" is accepted for histogram.
func ParseChartKind(name string) (ChartKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "histo" {
		return Histogram, nil
	}
	for k, v := range kindNames {
		if v == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (use scatter, bar, line or histogram)", ErrUnknownKind, name)
}
