// Package pipeline runs the single-end and paired-end fastq filtering loops.
//
// Each iteration reads a record (or pair), trims it, filters it unless
// running truncate only, drops duplicates when requested, checks the base
// budget and writes it. A run ends when the shortest input is exhausted or
// the base budget is exceeded. Trim, read and write failures abort the run.
package pipeline

import (
	"errors"
	"fmt"
	"github.com/dasnellings/fqclean/budget"
	"github.com/dasnellings/fqclean/dedup"
	"github.com/dasnellings/fqclean/fastq"
	"github.com/dasnellings/fqclean/filter"
	"github.com/dasnellings/fqclean/trim"
	"io"
	"log"
)

// Streams holds the inputs and outputs for a run. In2 selects paired mode
// and then requires Out2.
type Streams struct {
	In1, In2   io.Reader
	Out1, Out2 io.Writer
}

// Run selects single-end or paired-end mode from whether In2 is set.
func Run(s Streams, cfg Config) (Stats, error) {
	if s.In2 == nil {
		if s.Out2 != nil {
			return Stats{}, fmt.Errorf("%w: second output given without second input", ErrConfig)
		}
		return Single(s.In1, s.Out1, cfg)
	}
	if s.Out2 == nil {
		return Stats{}, fmt.Errorf("%w: paired input requires a second output", ErrConfig)
	}
	return Paired(s.In1, s.In2, s.Out1, s.Out2, cfg)
}

// Single filters one fastq stream.
func Single(in io.Reader, out io.Writer, cfg Config) (Stats, error) {
	var err error
	if err = cfg.Validate(false); err != nil {
		return Stats{}, err
	}
	win, _ := trim.NewWindow(cfg.TrimStart, cfg.TrimEnd)
	crit := cfg.criteria()
	counter := budget.Counter{Limit: cfg.BaseBudget}
	stats := newStats(false)

	r := fastq.NewReader(in)
	w := fastq.NewWriter(out)
	var rec fastq.Record
	var reason filter.Reason
	for r.Next() {
		rec = r.Record()
		stats.Read++
		logProgress(cfg.ProgressInterval, stats)

		if err = win.Apply(&rec); err != nil {
			return stats, fmt.Errorf("record %d: %w", stats.Read, err)
		}

		if !cfg.TruncateOnly {
			if reason = crit.Check(rec); reason != filter.Pass {
				stats.drop(reason.String())
				continue
			}
		}

		if !counter.Admit(len(rec.Sequence)) {
			stats.BudgetReached = true
			break
		}

		if err = w.Write(rec); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}
		stats.wrote(len(rec.Sequence))
	}

	if err = r.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}
	if err = w.Flush(); err != nil {
		return stats, fmt.Errorf("writing output: %w", err)
	}
	logDone(stats)
	return stats, nil
}

// Paired filters two mate streams in lock-step. A pair is kept only if both
// mates pass, and every kept pair is written to both outputs.
func Paired(in1, in2 io.Reader, out1, out2 io.Writer, cfg Config) (Stats, error) {
	var err error
	if err = cfg.Validate(true); err != nil {
		return Stats{}, err
	}
	win, _ := trim.NewWindow(cfg.TrimStart, cfg.TrimEnd)
	crit := cfg.criteria()
	counter := budget.Counter{Limit: cfg.BaseBudget}
	stats := newStats(true)

	var seen *dedup.Set
	if cfg.Deduplicate {
		seen = dedup.NewSet(cfg.Fingerprint)
	}

	p := fastq.NewPairReader(in1, in2)
	w1 := fastq.NewWriter(out1)
	w2 := fastq.NewWriter(out2)
	var r1, r2 fastq.Record
	var reason filter.Reason
	for p.Next() {
		r1, r2 = p.Pair()
		stats.Read++
		logProgress(cfg.ProgressInterval, stats)

		if err = win.Apply(&r1); err != nil {
			return stats, fmt.Errorf("pair %d mate 1: %w", stats.Read, err)
		}
		if err = win.Apply(&r2); err != nil {
			return stats, fmt.Errorf("pair %d mate 2: %w", stats.Read, err)
		}

		if !cfg.TruncateOnly {
			if reason = crit.CheckPair(r1, r2); reason != filter.Pass {
				stats.drop(reason.String())
				continue
			}
			if seen != nil && seen.Seen(r1.Sequence) {
				stats.drop(Duplicate)
				continue
			}
		}

		if !counter.Admit(len(r1.Sequence)) {
			stats.BudgetReached = true
			break
		}

		if err = w1.Write(r1); err != nil {
			return stats, fmt.Errorf("writing output 1: %w", err)
		}
		if err = w2.Write(r2); err != nil {
			return stats, fmt.Errorf("writing output 2: %w", err)
		}
		stats.wrote(len(r1.Sequence))
	}

	if err = p.Err(); err != nil {
		var me *fastq.MateError
		if errors.As(err, &me) {
			return stats, fmt.Errorf("reading input %d: %w", me.Mate, me.Err)
		}
		return stats, fmt.Errorf("reading input: %w", err)
	}
	if err = w1.Flush(); err != nil {
		return stats, fmt.Errorf("writing output 1: %w", err)
	}
	if err = w2.Flush(); err != nil {
		return stats, fmt.Errorf("writing output 2: %w", err)
	}
	logDone(stats)
	return stats, nil
}

func logProgress(interval int, stats Stats) {
	if interval > 0 && stats.Read%interval == 0 {
		log.Printf("processed %d %s, wrote %d\n", stats.Read, unit(stats), stats.Written)
	}
}

func logDone(stats Stats) {
	if stats.BudgetReached {
		log.Printf("base budget reached after %d %s, stopping early\n", stats.Read, unit(stats))
	}
}

func unit(stats Stats) string {
	if stats.Paired {
		return "pairs"
	}
	return "reads"
}
