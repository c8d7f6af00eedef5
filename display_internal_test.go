package threadchart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestViewerCommand(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{goos: "linux", wantName: "xdg-open"},
		{goos: "freebsd", wantName: "xdg-open"},
		{goos: "darwin", wantName: "open"},
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler"}},
	}
	for _, tC := range testCases {
		name, args := viewerCommand(tC.goos)
		if name != tC.wantName {
			t.Errorf("%s: want viewer %q, got %q", tC.goos, tC.wantName, name)
		}
		if !cmp.Equal(tC.wantArgs, args) {
			t.Errorf("%s: %s", tC.goos, cmp.Diff(tC.wantArgs, args))
		}
	}
}
