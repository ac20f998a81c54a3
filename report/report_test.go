package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/dasnellings/fqclean/pipeline"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestComma(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{"LessThanThousand", 123, "123"},
		{"Thousand", 1234, "1,234"},
		{"Million", 1234567, "1,234,567"},
		{"Billion", 1234567890, "1,234,567,890"},
		{"Zero", 0, "0"},
		{"ExactThousand", 1000, "1,000"},
		{"Negative", -1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Comma(tt.input))
		})
	}
}

func TestLengthSummary(t *testing.T) {
	mean, std := LengthSummary(nil)
	assert.Zero(t, mean)
	assert.Zero(t, std)

	mean, std = LengthSummary(map[int]int{150: 1})
	assert.Equal(t, 150.0, mean)
	assert.Zero(t, std)

	mean, std = LengthSummary(map[int]int{10: 2, 20: 2})
	assert.InDelta(t, 15.0, mean, 1e-9)
	// unbiased: sum of squared deviations 100 over 3
	assert.InDelta(t, math.Sqrt(100.0/3), std, 1e-9)
}

func TestHistogram(t *testing.T) {
	assert.Empty(t, Histogram(nil))
	h := Histogram(map[int]int{10: 5, 12: 1, 15: 3})
	assert.Contains(t, h, "read length 10-15")
}

func TestWrite(t *testing.T) {
	stats := pipeline.Stats{
		Paired:       true,
		Read:         2000,
		Written:      1000,
		BasesWritten: 150000,
		Dropped:      map[string]int{"low quality": 600, pipeline.Duplicate: 400},
		Lengths:      map[int]int{150: 1000},
	}
	buf := &bytes.Buffer{}
	Write(buf, stats, false)
	out := buf.String()

	assert.Contains(t, out, "Total pairs: 2,000")
	assert.Contains(t, out, "Written pairs: 1,000")
	assert.Contains(t, out, "Percentage written: 50.00%")
	assert.Contains(t, out, "Bases written: 150,000")
	assert.Contains(t, out, "Read length: mean 150.00, sd 0.00")
	assert.NotContains(t, out, "Base budget reached")

	// drop reasons are sorted by name
	assert.Less(t, strings.Index(out, "Dropped (duplicate)"), strings.Index(out, "Dropped (low quality)"))
}

func TestWriteEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	Write(buf, pipeline.Stats{BudgetReached: true}, true)
	out := buf.String()
	assert.Contains(t, out, "Total reads: 0")
	assert.Contains(t, out, "Percentage written: 0.00%")
	assert.Contains(t, out, "Base budget reached")
	assert.NotContains(t, out, "Read length")
}
