package threadchart_test

import (
	"errors"
	"testing"

	"github.com/thiagonache/threadchart"
)

func TestDisplayFuncCallsFunction(t *testing.T) {
	t.Parallel()
	var got string
	d := threadchart.DisplayFunc(func(path string) error {
		got = path
		return threadchart.ErrNoViewer
	})
	err := d.Display("chart.png")
	if !errors.Is(err, threadchart.ErrNoViewer) {
		t.Errorf("want ErrNoViewer, got %v", err)
	}
	if got != "chart.png" {
		t.Errorf("want path %q, got %q", "chart.png", got)
	}
}
