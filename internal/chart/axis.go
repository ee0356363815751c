package chart

import (
	"image/color"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var (
	pointColor = color.RGBA{B: 255, A: 180}
	barColor   = color.RGBA{R: 135, G: 206, B: 235, A: 255}
)

// axis holds a column projected onto a numeric axis. Categorical columns are placed at
// their first-seen codes and carry tick labels for the raw values.
type axis struct {
	vals  []float64
	valid []bool
	ticks plot.Ticker
}

func axisFor(ds *dataset.Dataset, col schema.Column) axis {
	name := string(col)
	if ds.Kind(name) == dataset.Numeric {
		vals, valid := ds.Floats(name)
		return axis{vals: vals, valid: valid}
	}
	codes, labels := ds.Codes(name)
	valid := make([]bool, len(codes))
	for i := range valid {
		valid[i] = true
	}
	return axis{vals: codes, valid: valid, ticks: labelTicks(labels)}
}

func labelTicks(labels []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return ticks
}

// points pairs x and y in row order, skipping rows where either side is missing.
func points(x, y axis) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x.vals))
	for i := range x.vals {
		if !x.valid[i] || !y.valid[i] {
			continue
		}
		pts = append(pts, plotter.XY{X: x.vals[i], Y: y.vals[i]})
	}
	return pts
}

// newPanel creates a panel titled "<primary> vs <other>" with both axes labeled.
func newPanel(primary, other schema.Column) *plot.Plot {
	p := plot.New()
	p.Title.Text = string(primary) + " vs " + string(other)
	p.X.Label.Text = string(primary)
	p.Y.Label.Text = string(other)
	p.Add(plotter.NewGrid())
	return p
}

func applyTicks(p *plot.Plot, x, y axis) {
	if x.ticks != nil {
		p.X.Tick.Marker = x.ticks
	}
	if y.ticks != nil {
		p.Y.Tick.Marker = y.ticks
	}
}
