package derex

import (
	"fmt"
	"io"
)

/*
decoder.go implements the Decoder engine: spec.md §4.4, ported from
decoder.c. It walks a DER byte stream incrementally, tracking a stack
of remaining-byte "capacities" (one per open constructed tag or
in-progress primitive, innermost first), and writes an S-expression
rendering to an io.Writer as it goes.

The capacity stack is a growable slice rather than a linked list, per
the "Stacks and lists" design note in spec.md §9 — caps[len(caps)-1]
is always the innermost (current) container's remaining byte count.
*/

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// WithFillers enables "fillers" mode: a run of 0xff padding octets at
// the root level, between top-level documents, is silently skipped
// rather than rejected as an invalid identifier byte. This is a
// runtime flag — spec.md §9 flags the original's compile-time #ifdef
// FILLERS as an open question the rewrite should resolve in favor of
// a runtime toggle, since a single process may need to handle both
// padded tape-style CDR files and strict DER in the same run.
func WithFillers(enabled bool) DecoderOption {
	return func(d *Decoder) { d.fillers = enabled }
}

// Decoder is a chunk-resumable DER-to-S-expression codec. A Decoder
// processes exactly one document; create a new instance per document
// (two documents may be decoded concurrently only by holding two
// independent instances, per spec.md §5).
type Decoder struct {
	out  io.Writer
	repr RepresentationRegistry

	fillers bool
	hd      *headerDecoder

	caps         []int // innermost-first; caps[len(caps)-1] is the top
	contentPhase bool

	// state of the primitive currently being printed, valid only
	// while contentPhase is true
	haveFormatter bool
	formatter     Formatter
	rawBuf        []byte
	wroteByte     bool
	curHeader     Header

	err error
}

// NewDecoder returns a Decoder that writes its S-expression rendering
// to out, looking up tag names and value formatters in repr.
func NewDecoder(out io.Writer, repr RepresentationRegistry, opts ...DecoderOption) *Decoder {
	d := &Decoder{out: out, repr: repr}
	for _, opt := range opts {
		opt(d)
	}
	d.hd = newHeaderDecoder(d.fillers)
	return d
}

// Err returns the first error this Decoder encountered, if any.
func (d *Decoder) Err() error { return d.err }

// Step consumes as much of s as it can. It returns StepDone once the
// document is complete (s reached EOF with no open containers) and
// StepContinue if s needs more bytes — the caller should append fresh
// bytes to s.Data (or set s.EOF) and call Step again. On error, Step
// sets s.Err (and remembers it via Err()) and returns StepContinue;
// the driver must not feed further chunks to this instance.
func (d *Decoder) Step(s *Stream) Step {
	if d.err != nil {
		s.fail(d.err)
		return StepContinue
	}

	if s.exhausted() {
		if len(d.caps) == 0 {
			return StepDone
		}
		d.fail(s, ErrUnexpectedEOF)
		return StepContinue
	}

	for {
		if !d.contentPhase {
			if step := d.stepHeader(s); step == StepContinue {
				return StepContinue
			}
		} else {
			if step := d.stepContent(s); step == StepContinue {
				return StepContinue
			}
		}
		if d.err != nil {
			return StepContinue
		}
		if s.exhausted() {
			if len(d.caps) == 0 {
				return StepDone
			}
			d.fail(s, ErrUnexpectedEOF)
			return StepContinue
		}
	}
}

func (d *Decoder) fail(s *Stream, err error) {
	d.err = err
	s.fail(err)
}

// clip returns the sub-stream this call may see: the whole chunk at
// the root, or no more than the innermost remaining capacity —
// preventing one tag's parser from straying into a sibling's bytes
// (spec.md §4.4, "clipping").
func (d *Decoder) clip(s *Stream) (*Stream, int) {
	n := len(s.Data)
	atRoot := len(d.caps) == 0
	if !atRoot {
		if remaining := d.caps[len(d.caps)-1]; remaining < n {
			n = remaining
		}
	}
	sub := &Stream{Data: s.Data[:n]}
	return sub, n
}

// commit folds a sub-stream's consumption back into the master stream
// and shrinks every open capacity in lockstep.
func (d *Decoder) commit(s, sub *Stream, clipLen int) (consumed int) {
	consumed = clipLen - len(sub.Data)
	s.advance(consumed)
	for i := range d.caps {
		d.caps[i] -= consumed
	}
	if sub.Err != nil {
		d.fail(s, sub.Err)
	}
	return
}

func (d *Decoder) stepHeader(s *Stream) Step {
	sub, clipLen := d.clip(s)
	atRoot := len(d.caps) == 0
	indic := d.hd.step(sub, atRoot)

	d.commit(s, sub, clipLen)
	if d.err != nil {
		return StepContinue
	}
	if indic == StepContinue {
		return StepContinue
	}

	d.openTag(s, d.hd.header)
	return StepDone
}

// openTag handles a freshly-parsed header: it prints the opening
// paren and name, and either finishes a zero-length tag immediately,
// pushes a new capacity, or reports a containment violation.
func (d *Decoder) openTag(s *Stream, h Header) {
	d.curHeader = h
	debugHeader(h)
	d.writeString("(")
	d.writeString(d.nameOf(h))

	if h.Length == 0 {
		if h.Constructed {
			d.writeString(" ()")
		} else {
			d.writeString(` ""`)
		}
		d.pushCapacity(0)
		d.closeDrained()
		d.lineFeed()
		return
	}

	if !d.contained(h.Length) {
		d.fail(s, ErrContainment)
		return
	}
	d.pushCapacity(h.Length)

	if !h.Constructed {
		d.contentPhase = true
		d.formatter, d.haveFormatter = d.repr.FormatterOf(h.Class, h.Number)
		d.rawBuf = d.rawBuf[:0]
		d.wroteByte = false
		if d.haveFormatter {
			d.writeString(" ")
		} else {
			d.writeString(` "`)
		}
		return
	}

	d.closeDrained()
	d.lineFeed()
}

func (d *Decoder) stepContent(s *Stream) Step {
	remaining := d.caps[len(d.caps)-1]
	n := len(s.Data)
	if remaining < n {
		n = remaining
	}
	data := s.Data[:n]

	if d.haveFormatter {
		d.rawBuf = append(d.rawBuf, data...)
	} else {
		d.writeHex(data)
	}

	s.advance(n)
	for i := range d.caps {
		d.caps[i] -= n
	}
	remaining -= n

	if remaining > 0 {
		if s.exhausted() {
			d.fail(s, ErrUnexpectedEOF)
		}
		return StepContinue
	}

	d.finishPrimitive()
	d.closeDrained()
	d.contentPhase = false
	d.lineFeed()
	return StepDone
}

func (d *Decoder) writeHex(data []byte) {
	for _, b := range data {
		if d.wroteByte {
			d.writeString(" ")
		}
		fmt.Fprintf(d.out, "%02x", b)
		d.wroteByte = true
	}
}

func (d *Decoder) finishPrimitive() {
	if !d.haveFormatter {
		d.writeString(`"`)
		return
	}
	text, err := d.formatter(d.rawBuf)
	if err != nil {
		// Formatter errors are non-fatal (spec.md §7.4): log and
		// fall back to hex.
		d.warnFormatterFailed(err)
		d.writeString(`"`)
		d.writeHex(d.rawBuf)
		d.writeString(`"`)
		return
	}
	d.writeString("[")
	d.writeString(text)
	d.writeString("]")
}

func (d *Decoder) warnFormatterFailed(err error) {
	debugFormatterFailed(d.curHeader, err)
}

func (d *Decoder) pushCapacity(n int) {
	d.caps = append(d.caps, n)
}

func (d *Decoder) contained(n int) bool {
	if len(d.caps) == 0 {
		return true
	}
	return d.caps[len(d.caps)-1] >= n
}

// closeDrained pops every zero-capacity container off the top of the
// stack, printing one ")" per pop — the cascade described in spec.md
// §4.4 that can close several nested tags from a single byte.
func (d *Decoder) closeDrained() {
	for len(d.caps) > 0 && d.caps[len(d.caps)-1] == 0 {
		d.caps = d.caps[:len(d.caps)-1]
		d.writeString(")")
	}
}

func (d *Decoder) lineFeed() {
	d.writeString("\n")
	for i := 0; i < len(d.caps); i++ {
		d.writeString("    ")
	}
}

func (d *Decoder) nameOf(h Header) string {
	if name, ok := d.repr.NameOf(h.Class, h.Number); ok {
		return name
	}
	return h.defaultName()
}

func (d *Decoder) writeString(s string) {
	if d.err != nil {
		return
	}
	if _, err := io.WriteString(d.out, s); err != nil {
		d.err = err
	}
}
