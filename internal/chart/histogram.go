package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bin is one distinct raw value of a column and how often it occurs.
type Bin struct {
	Value string
	Count int
}

// Bins groups values into one bin per distinct value, sorted ascending. Bins are ordered
// numerically when every value parses as a number and lexicographically otherwise.
func Bins(values []string) []Bin {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	bins := make([]Bin, 0, len(counts))
	numeric := len(counts) > 0
	nums := make(map[string]float64, len(counts))
	for v, c := range counts {
		bins = append(bins, Bin{Value: v, Count: c})
		if f, ok := dataset.ParseFloat(v); ok {
			nums[v] = f
		} else {
			numeric = false
		}
	}
	sort.Slice(bins, func(i, j int) bool {
		a, b := bins[i].Value, bins[j].Value
		if numeric && nums[a] != nums[b] {
			return nums[a] < nums[b]
		}
		return a < b
	})
	return bins
}

func renderHistogram(ds *dataset.Dataset, primary schema.Column, _ []schema.Column) (*Figure, error) {
	values, _ := ds.Values(string(primary))
	bins := Bins(values)

	p := plot.New()
	p.X.Label.Text = string(primary)
	p.Y.Label.Text = "Frequency"
	p.Add(plotter.NewGrid())
	if len(bins) > 0 {
		heights := make(plotter.Values, len(bins))
		labels := make([]string, len(bins))
		for i, b := range bins {
			heights[i] = float64(b.Count)
			labels[i] = b.Value
		}
		bc, err := plotter.NewBarChart(heights, vg.Points(barWidth))
		if err != nil {
			return nil, fmt.Errorf("histogram %s: %w", primary, err)
		}
		bc.Color = barColor
		p.Add(bc)
		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}
	return &Figure{Rows: 1, Cols: 1, Panels: [][]*plot.Plot{{p}}, Bins: bins}, nil
}
