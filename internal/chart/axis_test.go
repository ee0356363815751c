package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

func TestBarHeightsTakeLargestValidValue(t *testing.T) {
	codes := []float64{0, 1, 0, 1, 0}
	y := axis{
		vals:  []float64{5, 0, 9, 3, 1},
		valid: []bool{true, false, true, true, true},
	}
	require.Equal(t, plotter.Values{9, 3}, barHeights(codes, 2, y))

	// a key whose values are all missing stays at zero
	y.valid = []bool{true, false, true, false, true}
	require.Equal(t, plotter.Values{9, 0}, barHeights(codes, 2, y))

	// negative maxima are kept rather than clamped to zero
	neg := axis{vals: []float64{-4, -2}, valid: []bool{true, true}}
	require.Equal(t, plotter.Values{-2}, barHeights([]float64{0, 0}, 1, neg))
}

func TestPointsSkipMissingCoordinates(t *testing.T) {
	x := axis{vals: []float64{1, 2, 3, 4}, valid: []bool{true, false, true, true}}
	y := axis{vals: []float64{10, 20, 30, 40}, valid: []bool{true, true, false, true}}
	require.Equal(t, plotter.XYs{{X: 1, Y: 10}, {X: 4, Y: 40}}, points(x, y))
}

func TestAxisForCategoricalUsesFirstSeenCodes(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cars.csv")
	content := "make,price\nskipped,0\ntoyota,?\nhonda,1500\ntoyota,2000\nbmw,3000\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	ds, err := dataset.Load(p)
	require.NoError(t, err)

	mk := axisFor(ds, schema.Make)
	require.Equal(t, []float64{0, 1, 0, 2}, mk.vals)
	require.Equal(t, []bool{true, true, true, true}, mk.valid)
	require.Equal(t, plot.ConstantTicks{
		{Value: 0, Label: "toyota"},
		{Value: 1, Label: "honda"},
		{Value: 2, Label: "bmw"},
	}, mk.ticks)

	price := axisFor(ds, schema.Price)
	require.Equal(t, []bool{false, true, true, true}, price.valid)
	require.Equal(t, []float64{0, 1500, 2000, 3000}, price.vals)
	require.Nil(t, price.ticks)

	// missing prices drop out of the scatter points
	require.Equal(t, plotter.XYs{{X: 1, Y: 1500}, {X: 0, Y: 2000}, {X: 2, Y: 3000}}, points(mk, price))
}
