package filter

import (
	"strings"
	"testing"

	"github.com/dasnellings/fqclean/fastq"
	"github.com/stretchr/testify/assert"
)

var defaults = Criteria{QualityThreshold: 55, BadBaseLimit: 0.2, MaxN: 10}

func TestCutoff(t *testing.T) {
	assert.Equal(t, 2, defaults.cutoff(10))
	assert.Equal(t, 0, defaults.cutoff(4)) // 0.8 truncates to 0
	assert.Equal(t, 30, defaults.cutoff(150))
	assert.Equal(t, 3, Criteria{BadBaseLimit: 0.25}.cutoff(15)) // 3.75
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		qual string
		want Reason
	}{
		{
			name: "Pass",
			seq:  "ACGTACGTAC",
			qual: "IIIIIIIIII",
			want: Pass,
		},
		{
			name: "AllBadQuality",
			seq:  "ACGTACGTAC",
			qual: "!!!!!!!!!!",
			want: LowQuality,
		},
		{
			name: "BadBasesAtCutoff",
			seq:  "ACGTACGTAC",
			qual: "77IIIIIIII", // '7' == 55 is bad
			want: LowQuality,
		},
		{
			name: "BadBasesBelowCutoff",
			seq:  "ACGTACGTAC",
			qual: "78IIIIIIII",
			want: Pass,
		},
		{
			name: "NAtLimit",
			seq:  strings.Repeat("N", 10) + strings.Repeat("A", 10),
			qual: strings.Repeat("I", 20),
			want: Pass,
		},
		{
			name: "NOverLimit",
			seq:  strings.Repeat("N", 11),
			qual: strings.Repeat("I", 11),
			want: TooManyN,
		},
		{
			name: "NCheckedFirst",
			seq:  strings.Repeat("N", 11),
			qual: strings.Repeat("!", 11),
			want: TooManyN,
		},
		{
			name: "LowercaseNNotCounted",
			seq:  strings.Repeat("n", 11),
			qual: strings.Repeat("I", 11),
			want: Pass,
		},
		{
			name: "ZeroCutoffDropsShortRead",
			seq:  "ACGT",
			qual: "IIII",
			want: LowQuality,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := defaults.Check(fastq.Record{Header: "@r", Sequence: tc.seq, Quality: tc.qual})
			assert.Equal(t, tc.want, got, got.String())
		})
	}
}

func TestCheckPair(t *testing.T) {
	good := fastq.Record{Sequence: "ACGTACGTAC", Quality: "IIIIIIIIII"}
	manyN := fastq.Record{Sequence: strings.Repeat("N", 11) + "ACGTACGTA", Quality: strings.Repeat("I", 20)}
	lowQual := fastq.Record{Sequence: "ACGTACGTAC", Quality: "!!!!!!!!!!"}

	assert.Equal(t, Pass, defaults.CheckPair(good, good))
	assert.Equal(t, TooManyN, defaults.CheckPair(good, manyN))
	assert.Equal(t, TooManyN, defaults.CheckPair(manyN, good))
	assert.Equal(t, LowQuality, defaults.CheckPair(good, lowQual))
	assert.Equal(t, LowQuality, defaults.CheckPair(lowQual, good))
	assert.Equal(t, TooManyN, defaults.CheckPair(lowQual, manyN))
}

func TestCheckPairUsesMateLength(t *testing.T) {
	// mate 2 is longer, so its cutoff is 4 rather than mate 1's 2
	r1 := fastq.Record{Sequence: "ACGTACGTAC", Quality: "IIIIIIIIII"}
	r2 := fastq.Record{Sequence: strings.Repeat("A", 20), Quality: "!!!" + strings.Repeat("I", 17)}
	assert.Equal(t, Pass, defaults.CheckPair(r1, r2))
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "too many N", TooManyN.String())
	assert.Equal(t, "low quality", LowQuality.String())
	assert.Equal(t, "unknown", Reason(42).String())
}
