package chart

import (
	"fmt"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func renderScatter(ds *dataset.Dataset, primary schema.Column, compare []schema.Column) (*Figure, error) {
	side := GridSide(len(compare))
	fig := &Figure{Rows: side, Cols: side, Panels: newGrid(side)}
	x := axisFor(ds, primary)
	for i, col := range compare {
		p, err := scatterPanel(primary, col, x, axisFor(ds, col))
		if err != nil {
			return nil, err
		}
		r, c := slot(i, side)
		fig.Panels[r][c] = p
		fig.Drawn = append(fig.Drawn, col)
	}
	return fig, nil
}

func scatterPanel(primary, other schema.Column, x, y axis) (*plot.Plot, error) {
	p := newPanel(primary, other)
	if pts := points(x, y); len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("scatter %s: %w", other, err)
		}
		s.GlyphStyle.Color = pointColor
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
	}
	applyTicks(p, x, y)
	return p, nil
}
