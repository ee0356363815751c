// Package chart renders dataset columns as scatter, bar, line and histogram figures.
package chart

import (
	"fmt"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"gonum.org/v1/plot"
)

// Figure is a rendered grid of panels. Hidden grid slots are nil.
type Figure struct {
	Kind   schema.ChartKind
	Rows   int
	Cols   int
	Panels [][]*plot.Plot
	// Drawn lists the comparison columns that got a panel or series, in placement order.
	Drawn []schema.Column
	// Bins holds the histogram frequencies; empty for other kinds.
	Bins []Bin
}

// Panel returns the panel at row-major index i, or nil if hidden or out of range.
func (f *Figure) Panel(i int) *plot.Plot {
	if f.Cols == 0 || i < 0 || i >= f.Rows*f.Cols {
		return nil
	}
	r, c := slot(i, f.Cols)
	return f.Panels[r][c]
}

type renderFunc func(ds *dataset.Dataset, primary schema.Column, compare []schema.Column) (*Figure, error)

var renderers = map[schema.ChartKind]renderFunc{
	schema.Scatter:   renderScatter,
	schema.Bar:       renderBar,
	schema.Line:      renderLine,
	schema.Histogram: renderHistogram,
}

// Render draws primary against each comparison column using the renderer for kind.
// Histograms take no comparison columns; every other kind needs at least one.
// Arguments are validated before anything is drawn.
func Render(ds *dataset.Dataset, kind schema.ChartKind, primary schema.Column, compare ...schema.Column) (*Figure, error) {
	fn, ok := renderers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidArgument, schema.ErrUnknownKind, kind)
	}
	if !ds.Has(string(primary)) {
		return nil, fmt.Errorf("%w: %q not in %s", ErrUnknownColumn, primary, ds.Name())
	}
	if kind.NeedsComparisons() && len(compare) == 0 {
		return nil, fmt.Errorf("%w: %s chart needs at least one comparison column", ErrInvalidArgument, kind)
	}
	if !kind.NeedsComparisons() && len(compare) > 0 {
		return nil, fmt.Errorf("%w: cannot make %s for %d columns", ErrInvalidArgument, kind, len(compare)+1)
	}
	for _, c := range compare {
		if !ds.Has(string(c)) {
			return nil, fmt.Errorf("%w: %q not in %s", ErrUnknownColumn, c, ds.Name())
		}
	}
	fig, err := fn(ds, primary, compare)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	fig.Kind = kind
	return fig, nil
}
