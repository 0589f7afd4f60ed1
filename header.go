package derex

/*
header.go implements the DER identifier-and-length preamble codec
described in spec.md §4.3: parsing binary octets into a Header
(headerDecoder, used by Decoder) and serializing a Header back to
octets (encodeHeader, used by Encoder). It also implements the
S-expression side of a header — "u4 ", "a31 ", etc. — consumed while
parsing encoder input (headerTextReader).

Grounded directly in the original design's decoder.c:decode_header and
encoder.c:encode_header/encode_htagnum/encode_longlen, with the
continuation markers the C version kept in function-local statics
moved into the headerDecoder/headerTextReader structs so that two
instances never share state (spec.md §9, "Global mutable state").
*/

// headerState names the position of a suspended headerDecoder within
// the binary-header grammar. Using an exhaustively-matched enum here
// (rather than the original's bare "cont" integer) is the algebraic
// alternative spec.md §9 recommends over the marker-and-switch
// pattern.
type headerState int

const (
	hsFillers headerState = iota
	hsIdentifier
	hsHighTagNumber
	hsLengthInitial
	hsLengthOctets
)

// headerDecoder incrementally parses one DER tag header. A single
// instance is reused across every header in a document; Header is
// valid to read only immediately after step returns StepDone, before
// the next call to step.
type headerDecoder struct {
	state   headerState
	header  Header
	lenLeft int
	fillers bool
}

func newHeaderDecoder(fillers bool) *headerDecoder {
	return &headerDecoder{fillers: fillers}
}

// step attempts to parse one header from s. atRoot must be true only
// when this header opens a new top-level document (nesting depth 0) —
// "fillers" mode only skips 0xff padding there, matching the original
// decoder's at_root_p parameter.
func (hd *headerDecoder) step(s *Stream, atRoot bool) Step {
	for {
		switch hd.state {
		case hsFillers:
			if hd.fillers && atRoot {
				if dropWhile(s, isFiller) == StepContinue {
					return StepContinue
				}
			}
			hd.state = hsIdentifier

		case hsIdentifier:
			c, st := head(s)
			if st == StepContinue {
				return StepContinue
			}
			hd.header = Header{
				Class:       Class((c & 0xc0) >> 6),
				Constructed: c&0x20 != 0,
			}
			if c&0x1f == 0x1f {
				hd.header.Number = 0
				hd.state = hsHighTagNumber
			} else {
				hd.header.Number = uint32(c & 0x1f)
				hd.state = hsLengthInitial
			}

		case hsHighTagNumber:
			for len(s.Data) > 0 && s.Data[0]&0x80 != 0 {
				hd.header.Number = hd.header.Number<<7 | uint32(s.Data[0]&0x7f)
				s.advance(1)
			}
			c, st := head(s)
			if st == StepContinue {
				return StepContinue
			}
			hd.header.Number = hd.header.Number<<7 | uint32(c&0x7f)
			if hd.header.Number > maxTagNumber {
				s.fail(ErrTagNumberTooLarge)
				return StepContinue
			}
			hd.state = hsLengthInitial

		case hsLengthInitial:
			c, st := head(s)
			if st == StepContinue {
				return StepContinue
			}
			if c == 0xff {
				s.fail(ErrReservedLength)
				return StepContinue
			}
			if c == 0x80 {
				s.fail(ErrIndefiniteLength)
				return StepContinue
			}
			if c&0x80 == 0 {
				hd.header.Length = int(c)
				hd.state = hsFillers
				return StepDone
			}
			hd.lenLeft = int(c & 0x7f)
			if hd.lenLeft > 8 {
				s.fail(ErrLengthOfLengthTooLarge)
				return StepContinue
			}
			hd.header.Length = 0
			hd.state = hsLengthOctets

		case hsLengthOctets:
			for hd.lenLeft > 0 && len(s.Data) > 0 {
				hd.header.Length = hd.header.Length<<8 | int(s.Data[0])
				s.advance(1)
				hd.lenLeft--
			}
			if hd.lenLeft > 0 {
				return StepContinue
			}
			hd.state = hsFillers
			return StepDone
		}
	}
}

// encodeHeader appends the DER identifier-and-length encoding of h to
// acc and returns the number of bytes written, mirroring
// encoder.c:encode_header/encode_htagnum/encode_longlen.
func encodeHeader(acc *accumulator, h Header) int {
	start := acc.Len()

	ident := byte(h.Class) << 6
	if h.Constructed {
		ident |= 0x20
	}
	if h.Number <= 30 {
		ident |= byte(h.Number)
	} else {
		ident |= 0x1f
	}
	acc.WriteByte(ident)

	if h.Number > 30 {
		encodeHighTagNumber(acc, h.Number)
	}

	if h.Length < 0x80 {
		acc.WriteByte(byte(h.Length))
	} else {
		encodeLongLength(acc, h.Length)
	}

	return acc.Len() - start
}

// encodeHighTagNumber appends val's base-128 continuation-bit
// encoding, most-significant digit first, to acc. val must be > 30.
func encodeHighTagNumber(acc *accumulator, val uint32) {
	var buf [5]byte // ceil(30/7) == 5 septets
	i := len(buf)
	for {
		i--
		buf[i] = byte(val & 0x7f)
		val >>= 7
		if val == 0 {
			break
		}
	}
	for j := i; j < len(buf)-1; j++ {
		buf[j] |= 0x80
	}
	acc.Write(buf[i:])
}

// encodeLongLength appends the long-form length encoding (0x80|k
// followed by k big-endian octets, no leading zeros) of val to acc.
// val must be >= 0x80.
func encodeLongLength(acc *accumulator, val int) {
	var buf [8]byte
	n := 0
	for v := val; v > 0; v >>= 8 {
		n++
	}
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(val)
		val >>= 8
	}
	acc.WriteByte(0x80 | byte(n))
	acc.Write(buf[:n])
}

// headerTextState names the position of a suspended headerTextReader
// within the S-expression header grammar: \s*([uacp][0-9]+\s+|\)).
type headerTextState int

const (
	htsClassLetter headerTextState = iota
	htsDigits
	htsTrailingSpace
)

// headerTextReader parses "u4 " / "a31 " style headers (or a bare ")"
// signalling no more siblings) out of S-expression text, matching
// encoder.c:read_header/read_tag_class/read_tag_number.
type headerTextReader struct {
	state   headerTextState
	class   Class
	num     uint32
	digits  int
	closer  bool // true if a bare ")" was seen instead of a header
}

func (hr *headerTextReader) step(s *Stream) Step {
	for {
		switch hr.state {
		case htsClassLetter:
			if dropWhile(s, isSpace) == StepContinue {
				return StepContinue
			}
			c, st := head(s)
			if st == StepContinue {
				return StepContinue
			}
			switch c {
			case 'u':
				hr.class = ClassUniversal
			case 'a':
				hr.class = ClassApplication
			case 'c':
				hr.class = ClassContext
			case 'p':
				hr.class = ClassPrivate
			case ')':
				hr.closer = true
				return StepDone
			default:
				s.fail(ErrInvalidClassLetter)
				return StepContinue
			}
			hr.num = 0
			hr.digits = 0
			hr.state = htsDigits

		case htsDigits:
			for len(s.Data) > 0 && isDigit(s.Data[0]) {
				hr.digits++
				if hr.digits > 10 {
					s.fail(ErrTagNumberTooLarge)
					return StepContinue
				}
				hr.num = hr.num*10 + uint32(s.Data[0]-'0')
				s.advance(1)
			}
			if len(s.Data) == 0 {
				return StepContinue
			}
			if hr.digits == 0 {
				s.fail(ErrExpectedDigit)
				return StepContinue
			}
			if !isSpace(s.Data[0]) {
				s.fail(ErrExpectedWhitespace)
				return StepContinue
			}
			s.advance(1)
			if hr.num > maxTagNumber {
				s.fail(ErrTagNumberTooLarge)
				return StepContinue
			}
			hr.state = htsTrailingSpace

		case htsTrailingSpace:
			if dropWhile(s, isSpace) == StepContinue {
				return StepContinue
			}
			return StepDone
		}
	}
}
