package threadchart_test

import (
	"testing"

	"github.com/thiagonache/threadchart"
	"gonum.org/v1/plot/vg"
)

func TestNewFigureCanvasHasRequestedSize(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"png", "jpg", "tiff", "svg", "pdf", "eps"} {
		fig, err := threadchart.NewFigure(format, 10*vg.Inch, 6*vg.Inch, 30)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		w, h := fig.Canvas().Size()
		if w != 10*vg.Inch || h != 6*vg.Inch {
			t.Errorf("%s: want 10x6 inch canvas, got %vx%v", format, w, h)
		}
	}
}
