package chart

import (
	"fmt"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/logging"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// renderLine sizes its grid with LineGridSide; comparison columns that do not fit are skipped.
func renderLine(ds *dataset.Dataset, primary schema.Column, compare []schema.Column) (*Figure, error) {
	side := LineGridSide(len(compare))
	fig := &Figure{Rows: side, Cols: side, Panels: newGrid(side)}
	x := axisFor(ds, primary)
	for i, col := range compare {
		if i >= side*side {
			logging.L().Warn("line grid full, skipping columns",
				zap.Int("grid_side", side),
				zap.Strings("skipped", columnNames(compare[i:])))
			break
		}
		p, err := linePanel(primary, col, x, axisFor(ds, col))
		if err != nil {
			return nil, err
		}
		r, c := slot(i, side)
		fig.Panels[r][c] = p
		fig.Drawn = append(fig.Drawn, col)
	}
	return fig, nil
}

func linePanel(primary, other schema.Column, x, y axis) (*plot.Plot, error) {
	p := newPanel(primary, other)
	if pts := points(x, y); len(pts) > 0 {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", other, err)
		}
		l.LineStyle.Color = plotutil.Color(0)
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
	}
	applyTicks(p, x, y)
	return p, nil
}

func columnNames(cols []schema.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = string(c)
	}
	return out
}
