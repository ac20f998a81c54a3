// Package report renders a human readable summary of a filtering run.
package report

import (
	"fmt"
	"github.com/dasnellings/fqclean/pipeline"
	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"io"
	"strconv"
)

// Comma formats value with thousands separators.
func Comma(value int) string {
	if value < 0 {
		return "-" + Comma(-value)
	}
	str := strconv.Itoa(value)
	var ans []byte
	for i := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			ans = append(ans, ',')
		}
		ans = append(ans, str[i])
	}
	return string(ans)
}

// LengthSummary returns the mean and standard deviation of written read lengths.
// Both are zero when no reads were written.
func LengthSummary(lengths map[int]int) (mean, std float64) {
	if len(lengths) == 0 {
		return 0, 0
	}
	keys := maps.Keys(lengths)
	slices.Sort(keys)
	x := make([]float64, len(keys))
	weights := make([]float64, len(keys))
	for i, k := range keys {
		x[i] = float64(k)
		weights[i] = float64(lengths[k])
	}
	mean, std = stat.MeanStdDev(x, weights)
	if len(keys) == 1 {
		std = 0
	}
	return mean, std
}

// Histogram plots read count by length from the shortest to the longest written read.
func Histogram(lengths map[int]int) string {
	if len(lengths) == 0 {
		return ""
	}
	keys := maps.Keys(lengths)
	slices.Sort(keys)
	minLen, maxLen := keys[0], keys[len(keys)-1]
	data := make([]float64, maxLen-minLen+1)
	for k, n := range lengths {
		data[k-minLen] = float64(n)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("read length %d-%d", minLen, maxLen)))
}

// Write prints the summary of stats to w. The histogram is included when
// histogram is true and at least one read was written.
func Write(w io.Writer, stats pipeline.Stats, histogram bool) {
	unit := "reads"
	if stats.Paired {
		unit = "pairs"
	}

	var pct float64
	if stats.Read > 0 {
		pct = float64(stats.Written) / float64(stats.Read) * 100
	}

	fmt.Fprintf(w, "\nTotal %s: %s\n", unit, Comma(stats.Read))
	fmt.Fprintf(w, "Written %s: %s\n", unit, Comma(stats.Written))
	color.New(color.FgHiGreen).Fprintf(w, "Percentage written: %.2f%%\n", pct)
	fmt.Fprintf(w, "Bases written: %s\n", Comma(stats.BasesWritten))

	reasons := maps.Keys(stats.Dropped)
	slices.Sort(reasons)
	dropColor := color.New(color.FgHiMagenta)
	for _, r := range reasons {
		dropColor.Fprintf(w, "Dropped (%s): %s\n", r, Comma(stats.Dropped[r]))
	}

	if stats.BudgetReached {
		color.New(color.FgHiYellow).Fprintf(w, "Base budget reached, output truncated\n")
	}

	if stats.Written > 0 {
		mean, std := LengthSummary(stats.Lengths)
		fmt.Fprintf(w, "Read length: mean %.2f, sd %.2f\n", mean, std)
		if histogram {
			fmt.Fprintf(w, "\n%s\n", Histogram(stats.Lengths))
		}
	}
}
