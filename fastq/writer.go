package fastq

import (
	"bufio"
	"io"
)

// Writer serializes records as 4-line fastq with a bare "+" separator.
type Writer struct {
	buf *bufio.Writer
}

// NewWriter returns a buffered Writer. Callers must Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriterSize(w, 1<<16)}
}

// Write appends rec to the output. A bufio.Writer keeps the first error
// it sees, so checking the last write is sufficient.
func (w *Writer) Write(rec Record) error {
	w.buf.WriteString(rec.Header)
	w.buf.WriteByte('\n')
	w.buf.WriteString(rec.Sequence)
	w.buf.WriteString("\n+\n")
	w.buf.WriteString(rec.Quality)
	return w.buf.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
