package derex

/*
stream.go implements the Stream abstraction: one chunk of bytes plus an
exhaustion/error signal, passed between a chunk producer (spec.md calls
this the chunk source) and the iteratees in iteratee.go, header.go,
decoder.go and encoder.go.

This mirrors the original design's "struct Stream" (iteratee.h): a
discriminated union of Chunk(data, size) and EOF(err), where a Chunk of
size zero means "suspend, no data available yet, but the stream is
still alive".
*/

// Stream is a non-owning view over the current chunk of input. An
// iteratee advances a Stream by shrinking Data from the front; it
// never retains Data across calls, and a caller may reuse or
// overwrite the backing array once an iteratee returns.
type Stream struct {
	// Data is the unconsumed portion of the current chunk. Empty
	// with EOF false means "no data yet, but more may arrive".
	Data []byte

	// EOF is true once the producer has signaled there is no more
	// input. A Stream that has reached EOF never reverts to
	// carrying a chunk again within one document.
	EOF bool

	// Err is set by an iteratee that detects a protocol violation,
	// or by the producer reporting an I/O failure. Once set, the
	// driver must stop feeding further chunks.
	Err error
}

// advance drops the first n bytes of Data. n must not exceed len(Data).
func (s *Stream) advance(n int) {
	s.Data = s.Data[n:]
}

// fail records err on the stream if no error has been recorded yet.
// Matching the original's set_error, the first error wins.
func (s *Stream) fail(err error) {
	if s.Err == nil {
		s.Err = err
	}
}

// exhausted reports whether the stream can yield no further bytes at
// all (EOF with nothing buffered).
func (s *Stream) exhausted() bool {
	return s.EOF && len(s.Data) == 0
}
