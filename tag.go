package derex

import "strconv"

//go:generate stringer -type=Class -output=class_string.go

/*
Class identifies the four ASN.1 tag classes, carried in the top two
bits of a DER identifier octet.
*/
type Class int

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContext
	ClassPrivate
)

// classLetters indexes by [Class] to the single-letter S-expression
// notation used throughout the textual format (§6 of the format note:
// class letters are lowercase u, a, c, p).
var classLetters = [4]byte{'u', 'a', 'c', 'p'}

// maxTagNumber is the largest tag number the wire format can carry: a
// 30-bit unsigned payload (spec: "reject numbers that would set any of
// the top two bits of a 32-bit word").
const maxTagNumber = 1<<30 - 1

/*
Header carries the attributes of one DER tag, parsed from or destined
for the identifier-and-length preamble: class, tag number, whether the
contents is itself a sequence of nested tags, and the content length.
*/
type Header struct {
	Class       Class
	Number      uint32
	Constructed bool
	Length      int
}

// defaultName renders the "class+number" fallback form ("u4", "a31",
// ...) used whenever a [RepresentationRegistry] has no symbolic name
// for a tag.
func (h Header) defaultName() string {
	return string(classLetters[h.Class]) + strconv.FormatUint(uint64(h.Number), 10)
}
