// Package filter decides whether reads fail the ambiguous base or low quality checks.
package filter

import (
	"github.com/dasnellings/fqclean/fastq"
	"strings"
)

// Reason describes why a read was dropped.
type Reason int

const (
	Pass Reason = iota
	TooManyN
	LowQuality
)

func (r Reason) String() string {
	switch r {
	case Pass:
		return "pass"
	case TooManyN:
		return "too many N"
	case LowQuality:
		return "low quality"
	default:
		return "unknown"
	}
}

// Criteria holds filtering thresholds. QualityThreshold is compared against
// raw quality bytes (no phred offset is subtracted).
type Criteria struct {
	QualityThreshold uint8
	BadBaseLimit     float32
	MaxN             int
}

// Check returns the first failed condition for rec, or Pass.
func (c Criteria) Check(rec fastq.Record) Reason {
	if strings.Count(rec.Sequence, "N") > c.MaxN {
		return TooManyN
	}
	if c.badBases(rec.Quality) >= c.cutoff(len(rec.Quality)) {
		return LowQuality
	}
	return Pass
}

// CheckPair drops the pair if either mate fails. The N check runs on both
// mates before the quality check.
func (c Criteria) CheckPair(r1, r2 fastq.Record) Reason {
	if strings.Count(r1.Sequence, "N") > c.MaxN || strings.Count(r2.Sequence, "N") > c.MaxN {
		return TooManyN
	}
	if c.badBases(r1.Quality) >= c.cutoff(len(r1.Quality)) || c.badBases(r2.Quality) >= c.cutoff(len(r2.Quality)) {
		return LowQuality
	}
	return Pass
}

// cutoff truncates toward zero.
func (c Criteria) cutoff(length int) int {
	return int(float32(length) * c.BadBaseLimit)
}

func (c Criteria) badBases(qual string) int {
	var ans int
	for i := 0; i < len(qual); i++ {
		if qual[i] <= c.QualityThreshold {
			ans++
		}
	}
	return ans
}
