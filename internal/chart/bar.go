package chart

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const barWidth = 10 // points

// renderBar draws one panel per comparison column, keyed by the distinct primary values.
// Grids smaller than 3x3 collapse into a single panel with one bar series per column.
func renderBar(ds *dataset.Dataset, primary schema.Column, compare []schema.Column) (*Figure, error) {
	codes, keys := ds.Codes(string(primary))
	side := GridSide(len(compare))
	if side < 3 {
		p, err := groupedBarPanel(ds, primary, compare, codes, keys)
		if err != nil {
			return nil, err
		}
		return &Figure{Rows: 1, Cols: 1, Panels: [][]*plot.Plot{{p}}, Drawn: append([]schema.Column(nil), compare...)}, nil
	}

	fig := &Figure{Rows: side, Cols: side, Panels: newGrid(side)}
	for i, col := range compare {
		y := axisFor(ds, col)
		p := newPanel(primary, col)
		if len(keys) > 0 {
			b, err := plotter.NewBarChart(barHeights(codes, len(keys), y), vg.Points(barWidth))
			if err != nil {
				return nil, fmt.Errorf("bar %s: %w", col, err)
			}
			b.Color = barColor
			p.Add(b)
			p.NominalX(keys...)
		}
		if y.ticks != nil {
			p.Y.Tick.Marker = y.ticks
		}
		r, c := slot(i, side)
		fig.Panels[r][c] = p
		fig.Drawn = append(fig.Drawn, col)
	}
	return fig, nil
}

func groupedBarPanel(ds *dataset.Dataset, primary schema.Column, compare []schema.Column, codes []float64, keys []string) (*plot.Plot, error) {
	p := plot.New()
	names := columnNames(compare)
	p.Title.Text = string(primary) + " vs " + strings.Join(names, ", ")
	p.X.Label.Text = string(primary)
	p.Y.Label.Text = strings.Join(names, ", ")
	p.Add(plotter.NewGrid())
	if len(keys) == 0 {
		return p, nil
	}

	w := vg.Points(barWidth)
	n := len(compare)
	for i, col := range compare {
		y := axisFor(ds, col)
		b, err := plotter.NewBarChart(barHeights(codes, len(keys), y), w)
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", col, err)
		}
		if n == 1 {
			b.Color = barColor
		} else {
			b.Color = plotutil.Color(i)
			b.Offset = vg.Length(float64(i)-float64(n-1)/2) * w
			p.Legend.Add(string(col), b)
		}
		if n == 1 && y.ticks != nil {
			p.Y.Tick.Marker = y.ticks
		}
		p.Add(b)
	}
	if n > 1 {
		p.Legend.Top = true
	}
	p.NominalX(keys...)
	return p, nil
}

// barHeights gives each key the largest valid value observed for it; keys without one get 0.
func barHeights(codes []float64, nkeys int, y axis) plotter.Values {
	h := make(plotter.Values, nkeys)
	seen := make([]bool, nkeys)
	for i, c := range codes {
		if !y.valid[i] {
			continue
		}
		k := int(c)
		if !seen[k] || y.vals[i] > h[k] {
			h[k] = y.vals[i]
			seen[k] = true
		}
	}
	return h
}
