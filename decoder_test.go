package derex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopRegistry struct{}

func (nopRegistry) NameOf(Class, uint32) (string, bool)        { return "", false }
func (nopRegistry) FormatterOf(Class, uint32) (Formatter, bool) { return nil, false }

// decodeAll feeds der to a fresh Decoder in chunks of size chunkSize
// (0 means "all at once"), returning the rendered S-expression.
func decodeAll(t *testing.T, der []byte, chunkSize int, opts ...DecoderOption) string {
	t.Helper()
	var out strings.Builder
	d := NewDecoder(&out, nopRegistry{}, opts...)

	if chunkSize <= 0 {
		chunkSize = len(der) + 1
	}

	s := &Stream{}
	i := 0
	for {
		if i < len(der) {
			end := i + chunkSize
			if end > len(der) {
				end = len(der)
			}
			s.Data = der[i:end]
			i = end
		} else {
			s.EOF = true
		}

		step := d.Step(s)
		require.NoError(t, d.Err())
		if step == StepDone {
			break
		}
		require.Empty(t, s.Data, "decoder must consume a full chunk before requesting more")
	}
	return out.String()
}

func TestDecodePrimitiveNoFormatter(t *testing.T) {
	// INTEGER 0x01 (universal 2), content 0x7b = 123
	der := []byte{0x02, 0x01, 0x7b}
	got := decodeAll(t, der, 0)
	assert.Equal(t, "(u2 \"7b\")\n", got)
}

func TestDecodeConstructedNested(t *testing.T) {
	// SEQUENCE { INTEGER 1, INTEGER 2 }
	inner := []byte{0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	der := append([]byte{0x30, byte(len(inner))}, inner...)
	got := decodeAll(t, der, 0)
	assert.Contains(t, got, "(u16")
	assert.Contains(t, got, "(u2 \"01\")")
	assert.Contains(t, got, "(u2 \"02\")")
}

func TestDecodeEmptyConstructed(t *testing.T) {
	// SEQUENCE {} (universal 16), zero length
	der := []byte{0x30, 0x00}
	got := decodeAll(t, der, 0)
	assert.Equal(t, "(u16 ())\n", got)
}

func TestDecodeChunkingInvariance(t *testing.T) {
	inner := []byte{0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	der := append([]byte{0x30, byte(len(inner))}, inner...)

	whole := decodeAll(t, der, 0)
	for size := 1; size <= len(der); size++ {
		got := decodeAll(t, der, size)
		assert.Equal(t, whole, got, "chunk size %d produced different output", size)
	}
}

func TestDecodeContainmentViolation(t *testing.T) {
	// outer SEQUENCE declares length 2 but inner tag claims length 3
	der := []byte{0x30, 0x02, 0x02, 0x03, 0x01}
	var out strings.Builder
	d := NewDecoder(&out, nopRegistry{})
	s := &Stream{Data: der, EOF: true}
	d.Step(s)
	assert.ErrorIs(t, d.Err(), ErrContainment)
}

func TestDecodeWithFormatter(t *testing.T) {
	reg := fakeRegistry{formatters: map[uint32]Formatter{
		1: func(raw []byte) (string, error) {
			if len(raw) != 1 {
				return "", ErrUnexpectedEOF
			}
			if raw[0] != 0 {
				return "true", nil
			}
			return "false", nil
		},
	}}
	der := []byte{0x01, 0x01, 0xff} // BOOLEAN true
	var out strings.Builder
	d := NewDecoder(&out, reg)
	s := &Stream{Data: der, EOF: true}
	d.Step(s)
	require.NoError(t, d.Err())
	assert.Equal(t, "(u1 [true])\n", out.String())
}

type fakeRegistry struct {
	names      map[uint32]string
	formatters map[uint32]Formatter
}

func (r fakeRegistry) NameOf(_ Class, number uint32) (string, bool) {
	n, ok := r.names[number]
	return n, ok
}

func (r fakeRegistry) FormatterOf(_ Class, number uint32) (Formatter, bool) {
	f, ok := r.formatters[number]
	return f, ok
}
