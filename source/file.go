// Package source implements the chunk-producing side of a derex
// pipeline: reading an input file (or stdin) in block-sized chunks and
// driving a Decoder or Encoder to completion.
//
// Grounded in under.c's process_file/read_block/adjust_buffer: each
// call reads one os.File-block-sized chunk and hands it to the
// consumer as a derex.Stream, exactly as read_block fills a
// struct Pstring and sets up a struct Stream for run_codec.
package source

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/dereks/derex"
)

// defaultBlockSize is the read block size used for every input other
// than a small regular file. under.c sizes its buffer from the larger
// of stdin/stdout's st_blksize; os.FileInfo does not expose that
// portably, so a fixed 64KiB stands in for it.
const defaultBlockSize = 64 * 1024

// Stepper is the consumer side of a Drive loop: derex.Decoder and
// derex.Encoder both implement it.
type Stepper interface {
	Step(s *derex.Stream) derex.Step
	Err() error
}

// Drive reads in from r in blockSize-sized chunks (or the size
// blockSizeOf picks if blockSize <= 0) and feeds them to step until it
// reports
// StepDone or an error. It returns the first error encountered by
// either the read loop or step itself.
func Drive(step Stepper, r io.Reader, blockSize int) error {
	if blockSize <= 0 {
		blockSize = blockSizeOf(r)
	}
	buf := make([]byte, blockSize)
	s := &derex.Stream{}

	for {
		// Keep any bytes the last Step left unconsumed at the front of
		// buf and read fresh input after them.
		tail := copy(buf, s.Data)
		s.Data = buf[:tail]
		n, err := r.Read(buf[tail:])
		switch {
		case n > 0:
			s.Data = buf[:tail+n]
		case err == io.EOF:
			s.EOF = true
		case err != nil:
			return errors.Wrap(err, "reading input")
		default:
			// n == 0, err == nil: nothing to do this iteration.
		}

		result := step.Step(s)
		if err := step.Err(); err != nil {
			return err
		}
		if result == derex.StepDone {
			return nil
		}
		if err == io.EOF && !s.EOF {
			s.EOF = true
		}
	}
}

// blockSizeOf returns one more than the file's size when r is an
// *os.File smaller than defaultBlockSize, so one read takes the whole
// file; otherwise it returns defaultBlockSize.
func blockSizeOf(r io.Reader) int {
	f, ok := r.(*os.File)
	if !ok {
		return defaultBlockSize
	}
	info, err := f.Stat()
	if err != nil {
		return defaultBlockSize
	}
	if sz := info.Size(); sz > 0 && sz < defaultBlockSize {
		// Small regular files: one block is the whole thing.
		return int(sz) + 1
	}
	return defaultBlockSize
}

// Open opens path for reading, treating "-" as stdin — matching
// process_file's special-casing of the literal path "-".
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return f, nil
}
