package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// linesPerRecord is the number of lines in a single fastq record:
// header, sequence, separator, quality.
const linesPerRecord = 4

// Record is a single fastq read. The separator line is not retained.
type Record struct {
	Header   string
	Sequence string
	Quality  string
}

// Reader groups a line stream into fastq records. It is not restartable.
// A trailing group of fewer than 4 lines is silently dropped.
type Reader struct {
	buf  *bufio.Reader
	rec  Record
	err  error
	done bool
}

// NewReader returns a Reader consuming lines from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReaderSize(r, 1<<16)}
}

// Next advances the reader to the next complete record. It returns false when
// the input is exhausted or a read error occurred (see Err).
func (r *Reader) Next() bool {
	if r.done {
		return false
	}
	var lines [linesPerRecord]string
	var ok bool
	for i := range lines {
		lines[i], ok = r.line()
		if !ok {
			r.done = true
			return false
		}
	}
	r.rec = Record{Header: lines[0], Sequence: lines[1], Quality: lines[3]}
	return true
}

// Record returns the record read by the last successful call to Next.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first non-EOF error encountered by the reader.
func (r *Reader) Err() error {
	return r.err
}

// line returns the next line without its terminator. A final line
// missing its newline is still returned.
func (r *Reader) line() (string, bool) {
	s, err := r.buf.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
			return "", false
		}
		if s == "" {
			return "", false
		}
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true
}

// PairReader reads two fastq streams in lock-step. Iteration stops at
// whichever stream ends first and never yields a partial pair.
type PairReader struct {
	r1, r2 *Reader
}

// NewPairReader returns a PairReader over mate 1 and mate 2 streams.
func NewPairReader(r1, r2 io.Reader) *PairReader {
	return &PairReader{r1: NewReader(r1), r2: NewReader(r2)}
}

// Next advances both readers by one record.
func (p *PairReader) Next() bool {
	if !p.r1.Next() {
		return false
	}
	return p.r2.Next()
}

// Pair returns the mates read by the last successful call to Next.
func (p *PairReader) Pair() (Record, Record) {
	return p.r1.Record(), p.r2.Record()
}

// Err returns the first read error from either stream. The returned
// error reports which mate it came from.
func (p *PairReader) Err() error {
	if err := p.r1.Err(); err != nil {
		return &MateError{Mate: 1, Err: err}
	}
	if err := p.r2.Err(); err != nil {
		return &MateError{Mate: 2, Err: err}
	}
	return nil
}

// MateError records an error on one side of a paired run.
type MateError struct {
	Mate int
	Err  error
}

func (e *MateError) Error() string {
	return fmt.Sprintf("mate %d: %v", e.Mate, e.Err)
}

func (e *MateError) Unwrap() error {
	return e.Err
}
