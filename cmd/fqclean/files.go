package main

import (
	"github.com/klauspost/pgzip"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"os"
	"strings"
)

// openInput opens a fastq file, "stdin", or a gzipped file.
func openInput(path string) io.ReadCloser {
	return fileio.EasyOpen(path)
}

// createOutput creates path for writing. Gzipped outputs use parallel
// compression when threads > 1.
func createOutput(path string, threads int) io.WriteCloser {
	if threads > 1 && strings.HasSuffix(path, ".gz") {
		return newParallelGzip(path, threads)
	}
	return fileio.EasyCreate(path)
}

type parallelGzip struct {
	file *os.File
	gz   *pgzip.Writer
}

// blockSize is the pgzip default of 1MB per compression block.
const blockSize = 1 << 20

func newParallelGzip(path string, threads int) *parallelGzip {
	f, err := os.Create(path)
	exception.PanicOnErr(err)
	gz := pgzip.NewWriter(f)
	err = gz.SetConcurrency(blockSize, threads)
	exception.PanicOnErr(err)
	return &parallelGzip{file: f, gz: gz}
}

func (p *parallelGzip) Write(b []byte) (int, error) {
	return p.gz.Write(b)
}

// Close flushes the compressor before closing the file.
func (p *parallelGzip) Close() error {
	err := p.gz.Close()
	if cerr := p.file.Close(); err == nil {
		err = cerr
	}
	return err
}
