package threadchart

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// WriteComparison prints the elapsed times of both variants side by side,
// one line per thread count in ascending order. A dash marks a thread count
// that only one of the tables has.
func WriteComparison(w io.Writer, balanced, notBalanced ResultTable) {
	threads := lo.Uniq(append(
		lo.Map(balanced, func(r Row, _ int) int { return r.Threads }),
		lo.Map(notBalanced, func(r Row, _ int) int { return r.Threads })...,
	))
	sort.Ints(threads)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{ThreadsColumn, BalancedLabel, NotBalancedLabel})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, n := range threads {
		table.Append([]string{
			strconv.Itoa(n),
			elapsedFor(balanced, n),
			elapsedFor(notBalanced, n),
		})
	}
	table.Render()
}

// elapsedFor formats the first time recorded for n threads.
func elapsedFor(t ResultTable, n int) string {
	row, ok := lo.Find(t, func(r Row) bool { return r.Threads == n })
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(row.ElapsedSeconds, 'f', 6, 64)
}
