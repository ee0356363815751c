package chart

import (
	"math"

	"gonum.org/v1/plot"
)

// GridSide is the side of the square panel grid used by scatter and bar charts for n panels.
func GridSide(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// LineGridSide is the side of the panel grid used by line charts. It is smaller than
// GridSide for most n, so line figures can hold fewer panels than comparison columns.
func LineGridSide(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(math.Sqrt(float64(GridSide(n)))))
}

// newGrid allocates a side x side grid of hidden (nil) panels.
func newGrid(side int) [][]*plot.Plot {
	g := make([][]*plot.Plot, side)
	for i := range g {
		g[i] = make([]*plot.Plot, side)
	}
	return g
}

// slot maps a row-major panel index to its grid coordinates.
func slot(i, side int) (row, col int) {
	return i / side, i % side
}
