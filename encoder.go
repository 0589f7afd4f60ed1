package derex

import "io"

/*
encoder.go implements the Encoder engine: spec.md §4.5, ported from
encoder.c. It parses each top-level S-expression tag of a document
incrementally into a "tag tree" (first-child/next-sibling nodes
addressed by spans into a shared accumulator), and once a node's total
length becomes known — immediately for a primitive, lazily for a
constructed tag once its last child's closing paren is seen — encodes
that node's header right then and there, appending it to the
accumulator out of its final output order. Emission is a single
bottom-up-built, top-down-walked pass over the finished tree once that
top-level tag has fully parsed; the accumulator and tree state are
then reset so the next top-level tag in the document starts clean.
*/

// node is one entry of the tag tree. headerSpan and (for primitive
// leaves) contentSpan name regions of the Encoder's accumulator;
// header.Length holds the running total of this node's eventual
// content size (the sum, once known, of all of its children's
// encoded sizes for a constructed node).
type node struct {
	child, next *node
	header      Header
	headerSpan  span
	contentSpan span
	hasContent  bool
}

//go:generate stringer -type=encState -output=encstate_string.go

type encState int

const (
	encOpenRoot encState = iota
	encHeader
	encContentsType
	encPrimitiveValue
	encCloseOrSibling
)

// Encoder incrementally parses one document — a stream of top-level
// S-expression tags written back to back — and writes each tag's DER
// encoding to out as soon as its tree's lengths are known, resetting
// its accumulator before parsing the next. Like Decoder, an Encoder
// processes exactly one document; encode two documents concurrently
// by holding two independent instances.
type Encoder struct {
	out io.Writer
	acc *accumulator

	stack []*node // current path from root; stack[0] is the root
	root  *node
	state encState

	hr headerTextReader
	pv primValueReader

	err error
}

// NewEncoder returns an Encoder that parses one document — a stream
// of top-level S-expression tags — and writes each tag's DER encoding
// to out in turn.
func NewEncoder(out io.Writer) *Encoder {
	return &Encoder{out: out, acc: newAccumulator()}
}

// Err returns the first error this Encoder encountered, if any.
func (e *Encoder) Err() error { return e.err }

func (e *Encoder) top() *node { return e.stack[len(e.stack)-1] }

func (e *Encoder) push(n *node) { e.stack = append(e.stack, n) }

func (e *Encoder) pop() *node {
	n := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return n
}

func (e *Encoder) fail(s *Stream, err error) {
	e.err = err
	s.fail(err)
}

// Step consumes as much of s as it can, mirroring Decoder.Step's
// resumption contract: StepDone once s is exhausted with no top-level
// tag left open (every tag seen so far has been written to out in
// full and the accumulator reset for the next one), StepContinue if s
// needs more bytes. Like Decoder.Step, it loops over as many
// top-level tags as s has buffered before returning.
func (e *Encoder) Step(s *Stream) Step {
	if e.err != nil {
		s.fail(e.err)
		return StepContinue
	}

	if s.exhausted() {
		if len(e.stack) == 0 && e.state == encOpenRoot {
			return StepDone // no further top-level tag pending
		}
		e.fail(s, ErrUnexpectedEOF)
		return StepContinue
	}

	for {
		step := e.dispatch(s)
		if e.err == nil && s.Err != nil {
			// head and the text readers report errors on s only;
			// remember them so Err() reports them too.
			e.err = s.Err
		}
		if step == StepContinue {
			return step
		}
		if e.err != nil {
			return StepContinue
		}
		if s.exhausted() {
			if len(e.stack) == 0 && e.state == encOpenRoot {
				return StepDone
			}
			e.fail(s, ErrUnexpectedEOF)
			return StepContinue
		}
	}
}

func (e *Encoder) dispatch(s *Stream) Step {
	switch e.state {
	case encOpenRoot:
		return e.stepOpenRoot(s)
	case encHeader:
		return e.stepHeader(s)
	case encContentsType:
		return e.stepContentsType(s)
	case encPrimitiveValue:
		return e.stepPrimitiveValue(s)
	case encCloseOrSibling:
		return e.stepCloseOrSibling(s)
	default:
		panic("derex: unreachable encoder state")
	}
}

func (e *Encoder) stepOpenRoot(s *Stream) Step {
	if dropWhile(s, isSpace) == StepContinue {
		return StepContinue
	}
	c, st := head(s)
	if st == StepContinue {
		return StepContinue
	}
	if c != '(' {
		e.fail(s, ErrExpectedOpenParen)
		return StepContinue
	}
	root := &node{}
	e.push(root)
	e.state = encHeader
	return StepDone
}

func (e *Encoder) stepHeader(s *Stream) Step {
	if e.hr.step(s) == StepContinue {
		return StepContinue
	}
	closer, class, num := e.hr.closer, e.hr.class, e.hr.num
	e.hr = headerTextReader{}

	if closer {
		if len(e.stack) == 1 {
			// "()" as a whole top-level tag: nothing to encode, but
			// still reset for whatever tag follows it.
			e.pop()
			e.resetForNextTag()
			return StepDone
		}
		// Zero children of a constructed tag: leave the parent on
		// the stack and let the close-loop discover its terminator.
		e.state = encCloseOrSibling
		return StepDone
	}

	cur := e.top()
	cur.header.Class = class
	cur.header.Number = num
	e.state = encContentsType
	return StepDone
}

func (e *Encoder) stepContentsType(s *Stream) Step {
	if dropWhile(s, isSpace) == StepContinue {
		return StepContinue
	}
	c, st := head(s)
	if st == StepContinue {
		return StepContinue
	}
	cur := e.top()
	switch c {
	case '(':
		cur.header.Constructed = true
		child := &node{}
		cur.child = child
		e.push(child)
		e.state = encHeader
	case '"':
		cur.header.Constructed = false
		e.pv = primValueReader{start: e.acc.mark()}
		e.state = encPrimitiveValue
	default:
		e.fail(s, ErrExpectedQuote)
		return StepContinue
	}
	return StepDone
}

func (e *Encoder) stepPrimitiveValue(s *Stream) Step {
	if e.pv.step(s, e.acc) == StepContinue {
		return StepContinue
	}
	cur := e.top()
	cur.contentSpan = e.acc.span(e.pv.start)
	cur.hasContent = true
	cur.header.Length = cur.contentSpan.length

	if len(e.stack) == 1 {
		e.finalizeRoot(cur)
		return e.emit(s)
	}

	e.finalizeChild()
	e.state = encCloseOrSibling
	return StepDone
}

func (e *Encoder) stepCloseOrSibling(s *Stream) Step {
	if dropWhile(s, isSpace) == StepContinue {
		return StepContinue
	}
	c, st := head(s)
	if st == StepContinue {
		return StepContinue
	}
	if c != ')' && c != '(' {
		e.fail(s, ErrExpectedCloseParen)
		return StepContinue
	}
	closed := e.pop()

	if c == ')' {
		if len(e.stack) == 1 {
			// Only the root remains: its child list is complete.
			e.finalizeRoot(e.top())
			return e.emit(s)
		}
		e.finalizeChild()
		return StepDone // state stays encCloseOrSibling; loop continues
	}

	sibling := &node{}
	closed.next = sibling
	e.push(sibling)
	e.state = encHeader
	return StepDone
}

// finalizeChild encodes the header of the current top-of-stack node
// — its Length now fixed, whether because it is the primitive just
// parsed or the constructed tag whose last child just closed — and
// folds its total encoded size into its parent's running Length.
func (e *Encoder) finalizeChild() {
	n := e.top()
	start := e.acc.mark()
	sz := encodeHeader(e.acc, n.header)
	n.headerSpan = span{offset: start, length: sz}

	parent := e.stack[len(e.stack)-2]
	parent.header.Length += sz + n.header.Length
}

// finalizeRoot encodes n's header now that its Length is final, with
// no parent to fold into, and remembers n as the tree to emit.
func (e *Encoder) finalizeRoot(n *node) {
	start := e.acc.mark()
	sz := encodeHeader(e.acc, n.header)
	n.headerSpan = span{offset: start, length: sz}
	e.root = n
}

// emit writes the finished tree to out in DER's depth-first order,
// then resets the accumulator and tree state so the next top-level
// tag in the stream starts from a clean slate (spec.md §4.5: "emits
// the completed tree in document order before resetting the
// accumulator for the next top-level tag").
func (e *Encoder) emit(s *Stream) Step {
	if err := e.writeNode(e.root); err != nil {
		e.fail(s, err)
		return StepContinue
	}
	e.resetForNextTag()
	return StepDone
}

// resetForNextTag clears the tree built for the top-level tag just
// finished and empties the accumulator, keeping its backing array,
// per spec.md §3's "the accumulator is then reset" discipline.
func (e *Encoder) resetForNextTag() {
	e.stack = e.stack[:0]
	e.root = nil
	e.acc.reset()
	e.state = encOpenRoot
}

func (e *Encoder) writeNode(n *node) error {
	for cur := n; cur != nil; cur = cur.next {
		if _, err := e.out.Write(e.acc.bytes(cur.headerSpan)); err != nil {
			return err
		}
		if cur.hasContent {
			if _, err := e.out.Write(e.acc.bytes(cur.contentSpan)); err != nil {
				return err
			}
		} else if cur.child != nil {
			if err := e.writeNode(cur.child); err != nil {
				return err
			}
		}
	}
	return nil
}

// primValueState names the position of a suspended primValueReader.
type primValueState int

const (
	pvDigits primValueState = iota
	pvTrailingClose
)

// primValueReader decodes '\s*([0-9a-fA-F]{2}(\s+[0-9a-fA-F]{2})*\s*
// )?"\s*\)' directly into an accumulator, appending one decoded byte
// per hex pair and consuming the primitive's own trailing ')' as part
// of the same grammar unit (encoder.c:primval + read_primitive).
type primValueReader struct {
	start       int
	state       primValueState
	nibble      byte
	haveNibble  bool
	expectSpace bool
}

func (pv *primValueReader) step(s *Stream, acc *accumulator) Step {
	for pv.state == pvDigits {
		c, st := head(s)
		if st == StepContinue {
			return StepContinue
		}

		if !pv.haveNibble {
			if c == '"' {
				pv.state = pvTrailingClose
				break
			}
			if isSpace(c) {
				pv.expectSpace = false
				if dropWhile(s, isSpace) == StepContinue {
					return StepContinue
				}
				c2, st2 := head(s)
				if st2 == StepContinue {
					return StepContinue
				}
				if c2 == '"' {
					pv.state = pvTrailingClose
					break
				}
				c = c2
			} else if pv.expectSpace {
				s.fail(ErrExpectedWhitespace)
				return StepContinue
			}
		} else if c == '"' {
			s.fail(ErrOddHexDigits)
			return StepContinue
		}

		if !isHexDigit(c) {
			s.fail(ErrInvalidHexDigit)
			return StepContinue
		}

		if !pv.haveNibble {
			pv.nibble = c
			pv.haveNibble = true
			continue
		}
		acc.WriteByte(hexVal(pv.nibble)<<4 | hexVal(c))
		pv.haveNibble = false
		pv.expectSpace = true
	}

	if dropWhile(s, isSpace) == StepContinue {
		return StepContinue
	}
	c, st := head(s)
	if st == StepContinue {
		return StepContinue
	}
	if c != ')' {
		s.fail(ErrExpectedCloseParen)
		return StepContinue
	}
	return StepDone
}
