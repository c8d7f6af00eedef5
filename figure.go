package threadchart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var (
	ErrOutput            = errors.New("cannot write chart")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Figure is the canvas a chart is drawn on. It belongs to a single render
// and is not safe to share.
type Figure struct {
	Format string
	Width  vg.Length
	Height vg.Length
	DPI    int
	canvas vg.CanvasWriterTo
}

// FormatFromPath returns the image format implied by the extension of path.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// NewFigure creates a blank canvas of the given size. Raster formats are
// rasterised at dpi dots per inch; vector formats ignore it.
func NewFigure(format string, w, h vg.Length, dpi int) (*Figure, error) {
	fig := &Figure{
		Format: format,
		Width:  w,
		Height: h,
		DPI:    dpi,
	}
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	}
	switch format {
	case "png":
		fig.canvas = vgimg.PngCanvas{Canvas: raster()}
	case "jpg", "jpeg":
		fig.canvas = vgimg.JpegCanvas{Canvas: raster()}
	case "tif", "tiff":
		fig.canvas = vgimg.TiffCanvas{Canvas: raster()}
	case "svg":
		fig.canvas = vgsvg.New(w, h)
	case "pdf":
		fig.canvas = vgpdf.New(w, h)
	case "eps":
		fig.canvas = vgeps.New(w, h)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return fig, nil
}

// Canvas exposes the underlying canvas for drawing.
func (f *Figure) Canvas() vg.CanvasSizer {
	return f.canvas
}

// Save encodes the figure to path. On failure no file is left behind.
func (f *Figure) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if _, err := f.canvas.WriteTo(out); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
