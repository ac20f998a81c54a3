package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/dasnellings/fqclean/pipeline"
	"github.com/dasnellings/fqclean/report"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"log"
	"os"
	"runtime/pprof"
)

type filterOptions struct {
	in1, in2   string
	out1, out2 string
	summary    string
	histogram  bool
	threads    int
	verbose    int
	cpuprofile string

	start, end int
	quality    int
	limit      float64
	maxN       int
	budget     int
	dedup      bool

	truncateOnly bool
}

func filterUsage(name string, filterFlags *flag.FlagSet) {
	var blurb string
	if name == "truncate" {
		blurb = "truncate - trim reads to a fixed window and stop after a base budget, without quality filtering\n\n"
	} else {
		blurb = "filter - trim reads and remove those with too many Ns, too many low quality bases, or duplicate R1 sequences\n\n"
	}
	fmt.Print(
		blurb +
			"Usage:\n" +
			"  fqclean " + name + " [options] -1 r1.fq.gz -o1 clean.fq\n" +
			"  fqclean " + name + " [options] -1 r1.fq.gz -2 r2.fq.gz -o1 clean_1.fq -o2 clean_2.fq\n\n" +
			"Options:\n")
	filterFlags.PrintDefaults()
}

// newFilterFlags registers the options shared by filter and truncate.
func newFilterFlags(name string, truncateOnly bool) (*flag.FlagSet, *filterOptions) {
	o := &filterOptions{truncateOnly: truncateOnly}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	defaults := pipeline.DefaultConfig()

	fs.StringVar(&o.in1, "1", "stdin", "Input fastq file 1. May be gzipped.")
	fs.StringVar(&o.in2, "2", "", "Input fastq file 2 for paired-end data. May be gzipped.")
	fs.StringVar(&o.out1, "o1", "stdout", "Output clean fastq file 1. Gzipped if the name ends in .gz.")
	fs.StringVar(&o.out2, "o2", "", "Output clean fastq file 2. Requires -2.")
	fs.IntVar(&o.start, "s", 0, "Number of bases cut from the start of every read.")
	fs.IntVar(&o.end, "e", 0, "End position (exclusive) of the kept window. 0 keeps the rest of the read.")
	fs.IntVar(&o.quality, "q", int(defaults.QualityThreshold), "Quality bytes at or under this value are considered bad bases (1-100).")
	fs.Float64Var(&o.limit, "l", float64(defaults.BadBaseLimit), "Reads are removed if bad bases >= limit * length. Must be in (0,1).")
	fs.IntVar(&o.maxN, "n", defaults.MaxN, "Reads having more Ns than this are removed.")
	fs.IntVar(&o.budget, "b", 0, "Stop once this many R1 bases have been written. 0 for no limit.")
	fs.BoolVar(&o.dedup, "d", false, "Remove pairs with a duplicated R1 sequence. Requires -2.")
	fs.IntVar(&o.threads, "threads", 1, "Compression threads for .gz outputs.")
	fs.StringVar(&o.summary, "summary", "stderr", "Write a run summary to this file. Set to \"\" to disable.")
	fs.BoolVar(&o.histogram, "hist", false, "Include a read length histogram in the summary.")
	fs.IntVar(&o.verbose, "v", 0, "Log progress every 1,000,000 reads when > 0.")
	fs.StringVar(&o.cpuprofile, "cpuprofile", "", "write cpu profile")
	return fs, o
}

// config checks the shell level option combinations and resolves the pipeline config.
func (o *filterOptions) config() (pipeline.Config, error) {
	if o.in2 == "" && o.out2 != "" {
		return pipeline.Config{}, errors.New("-o2 requires -2")
	}
	if o.in2 != "" && o.out2 == "" {
		return pipeline.Config{}, errors.New("-2 requires -o2")
	}
	if o.dedup && o.in2 == "" {
		return pipeline.Config{}, errors.New("-d requires -2")
	}
	if o.quality < 1 || o.quality > 100 {
		return pipeline.Config{}, fmt.Errorf("-q must be in [1,100], got %d", o.quality)
	}
	if o.threads < 1 {
		return pipeline.Config{}, errors.New("threads must be >= 1")
	}

	cfg := pipeline.Config{
		TrimStart:        o.start,
		TrimEnd:          o.end,
		QualityThreshold: uint8(o.quality),
		BadBaseLimit:     float32(o.limit),
		MaxN:             o.maxN,
		BaseBudget:       o.budget,
		Deduplicate:      o.dedup,
		TruncateOnly:     o.truncateOnly,
	}
	if o.verbose > 0 {
		cfg.ProgressInterval = 1_000_000
	}
	return cfg, cfg.Validate(o.in2 != "")
}

// filterFiles opens the configured files, runs the pipeline and closes
// everything it opened. Outputs are closed even when the run fails.
func filterFiles(o *filterOptions, cfg pipeline.Config) (pipeline.Stats, error) {
	var err error
	var s pipeline.Streams
	var closers []io.Closer

	in1 := openInput(o.in1)
	closers = append(closers, in1)
	s.In1 = in1
	if o.in2 != "" {
		in2 := openInput(o.in2)
		closers = append(closers, in2)
		s.In2 = in2
	}

	out1 := createOutput(o.out1, o.threads)
	closers = append(closers, out1)
	s.Out1 = out1
	if o.out2 != "" {
		out2 := createOutput(o.out2, o.threads)
		closers = append(closers, out2)
		s.Out2 = out2
	}

	stats, runErr := pipeline.Run(s, cfg)
	for _, c := range closers {
		if err = c.Close(); err != nil && runErr == nil {
			runErr = fmt.Errorf("closing file: %w", err)
		}
	}
	return stats, runErr
}

func runFilter(args []string) {
	runFilterMode("filter", args, false)
}

func runTruncate(args []string) {
	runFilterMode("truncate", args, true)
}

func runFilterMode(name string, args []string, truncateOnly bool) {
	var err error
	filterFlags, opts := newFilterFlags(name, truncateOnly)

	err = filterFlags.Parse(args)
	exception.PanicOnErr(err)
	filterFlags.Usage = func() { filterUsage(name, filterFlags) }

	if opts.cpuprofile != "" {
		f, err := os.Create(opts.cpuprofile)
		if err != nil {
			errExit(err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			errExit(err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := opts.config()
	if err != nil {
		filterFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	if truncateOnly && opts.dedup {
		log.Println("WARNING: -d has no effect with truncate, duplicates will be kept.")
	}

	stats, err := filterFiles(opts, cfg)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	if opts.summary != "" {
		writeSummary(opts.summary, stats, opts.histogram)
	}
}

func writeSummary(path string, stats pipeline.Stats, histogram bool) {
	if path == "stderr" {
		report.Write(os.Stderr, stats, histogram)
		return
	}
	out := createOutput(path, 1)
	report.Write(out, stats, histogram)
	err := out.Close()
	exception.PanicOnErr(err)
}
