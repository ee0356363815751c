package chart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KaramelBytes/autoplot-cli/internal/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// panelPad separates neighbouring panels.
const panelPad = vg.Length(24)

func newCanvas(format string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.New(w, h)}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	default:
		return nil, fmt.Errorf("%w: %q (use png, jpg, svg or pdf)", ErrUnsupportedFormat, format)
	}
}

// Draw lays the panels out on dc. Hidden slots are left blank.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.Rows == 0 || f.Cols == 0 {
		return
	}
	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadX:      panelPad,
		PadY:      panelPad,
		PadTop:    panelPad / 2,
		PadBottom: panelPad / 2,
		PadLeft:   panelPad / 2,
		PadRight:  panelPad / 2,
	}
	canvases := plot.Align(f.Panels, tiles, dc)
	for r, row := range f.Panels {
		for c, p := range row {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}
}

// WriteTo encodes the figure in format ("png", "jpg", "jpeg", "svg" or "pdf") at the given size.
func (f *Figure) WriteTo(w io.Writer, format string, width, height vg.Length) (int64, error) {
	c, err := newCanvas(format, width, height)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	n, err := c.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("encode %s: %w", format, err)
	}
	return n, nil
}

// Save writes the figure to path, choosing the format from the file extension.
func (f *Figure) Save(path string, width, height vg.Length) error {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, utils.Ext(path), width, height); err != nil {
		return err
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
