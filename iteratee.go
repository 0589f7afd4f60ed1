package derex

/*
iteratee.go implements the two primitive, resumable byte consumers
that every higher-level parser in this package is built from: head and
dropWhile. Most other parsers suspend transitively, by calling one of
these two (or an earlier call to one of these that has not yet reached
Done); the multi-octet loops in header.go (high tag number, long
length, decimal tag digits) and Decoder.stepContent also return
StepContinue themselves when they peek at an empty chunk.

This is a direct port of the original design's iteratee.c, with the
coroutine-by-global-statics discipline replaced by state carried
explicitly in the caller (decoder.go and encoder.go own the
continuation markers the original kept in file-static variables), per
the "no global mutable state" design note in spec.md §9.
*/

// Step reports whether an iteratee produced a value (StepDone) or
// needs more bytes to continue (StepContinue).
type Step int

const (
	StepContinue Step = iota
	StepDone
)

// head attempts to read the next byte of s. It reports StepContinue
// if s has no data buffered yet (the caller should return and wait
// for the next chunk), and sets s.Err if s has already reached EOF.
func head(s *Stream) (byte, Step) {
	if s.EOF && len(s.Data) == 0 {
		s.fail(ErrUnexpectedEOF)
		return 0, StepContinue
	}
	if len(s.Data) == 0 {
		return 0, StepContinue
	}
	c := s.Data[0]
	s.advance(1)
	return c, StepDone
}

// dropWhile advances s past a run of bytes matching p, stopping at
// the first non-matching byte (StepDone) or when the current chunk is
// exhausted before one is found (StepContinue).
func dropWhile(s *Stream, p func(byte) bool) Step {
	for len(s.Data) > 0 {
		if !p(s.Data[0]) {
			return StepDone
		}
		s.advance(1)
	}
	return StepContinue
}

func isFiller(c byte) bool { return c == 0xff }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
