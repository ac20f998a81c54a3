// Package trim applies a fixed positional window to fastq records.
package trim

import (
	"errors"
	"fmt"
	"github.com/dasnellings/fqclean/fastq"
	"github.com/vertgenlab/gonomics/numbers"
)

// ErrOutOfRange is returned when the window start lies past the end of a read.
var ErrOutOfRange = errors.New("trim window out of range")

// ErrInvertedWindow is returned by NewWindow when start comes after end.
var ErrInvertedWindow = errors.New("start position comes after the end")

// Window is the half-open interval [Start, End) kept from each read.
// End == 0 means the window is unbounded on the right.
type Window struct {
	Start int
	End   int
	keep  int // End - Start, resolved once
}

// NewWindow resolves a trim window. Negative values and start > end
// (with a bounded end) are rejected.
func NewWindow(start, end int) (Window, error) {
	if start < 0 || end < 0 {
		return Window{}, fmt.Errorf("negative trim position: start=%d end=%d", start, end)
	}
	if end != 0 && start > end {
		return Window{}, fmt.Errorf("%w: start=%d end=%d", ErrInvertedWindow, start, end)
	}
	w := Window{Start: start, End: end}
	if end != 0 {
		w.keep = end - start
	}
	return w, nil
}

// IsNoop reports whether Apply leaves records untouched.
func (w Window) IsNoop() bool {
	return w.Start == 0 && w.End == 0
}

// Apply trims the sequence and quality of rec in place. Reads shorter
// than the window are truncated but never padded.
func (w Window) Apply(rec *fastq.Record) error {
	if w.Start > 0 {
		if w.Start > len(rec.Sequence) || w.Start > len(rec.Quality) {
			return fmt.Errorf("%w: start %d exceeds read length %d in %s", ErrOutOfRange, w.Start, len(rec.Sequence), rec.Header)
		}
		rec.Sequence = rec.Sequence[w.Start:]
		rec.Quality = rec.Quality[w.Start:]
	}
	if w.End > 0 {
		rec.Sequence = rec.Sequence[:numbers.Min(w.keep, len(rec.Sequence))]
		rec.Quality = rec.Quality[:numbers.Min(w.keep, len(rec.Quality))]
	}
	return nil
}
