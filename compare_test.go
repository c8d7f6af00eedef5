package threadchart_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thiagonache/threadchart"
)

func TestWriteComparisonPrintsOneLinePerThreadCount(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	threadchart.WriteComparison(buf,
		threadchart.ResultTable{{Threads: 2, ElapsedSeconds: 0.3}, {Threads: 1, ElapsedSeconds: 0.5}},
		threadchart.ResultTable{{Threads: 1, ElapsedSeconds: 0.6}, {Threads: 4, ElapsedSeconds: 0.25}},
	)
	out := buf.String()
	for _, want := range []string{"Threads", "Balanceado", "Não Balanceado", "0.500000", "0.600000", "0.250000"} {
		if !strings.Contains(out, want) {
			t.Errorf("want %q in output:\n%s", want, out)
		}
	}
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") && !strings.Contains(line, "Threads") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d:\n%s", len(rows), out)
	}
	for i, n := range []string{"1", "2", "4"} {
		fields := strings.Split(rows[i], "|")
		if strings.TrimSpace(fields[1]) != n {
			t.Errorf("row %d: want %s threads, got %q", i, n, fields[1])
		}
	}
	if !strings.Contains(rows[1], "-") || !strings.Contains(rows[2], "-") {
		t.Errorf("want dash for thread counts missing from one table:\n%s", out)
	}
}
