package derex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeAll feeds sexpr to a fresh Encoder in chunks of chunkSize (0
// means "all at once"), returning the produced DER bytes.
func encodeAll(t *testing.T, sexpr string, chunkSize int) []byte {
	t.Helper()
	var out bytes.Buffer
	e := NewEncoder(&out)

	data := []byte(sexpr)
	if chunkSize <= 0 {
		chunkSize = len(data) + 1
	}

	s := &Stream{}
	i := 0
	for {
		if i < len(data) {
			end := i + chunkSize
			if end > len(data) {
				end = len(data)
			}
			s.Data = data[i:end]
			i = end
		} else {
			s.EOF = true
		}

		step := e.Step(s)
		require.NoError(t, e.Err())
		if step == StepDone {
			break
		}
		require.Empty(t, s.Data, "encoder must consume a full chunk before requesting more")
	}
	return out.Bytes()
}

func TestEncodePrimitive(t *testing.T) {
	got := encodeAll(t, `(u2 "7b")`, 0)
	assert.Equal(t, []byte{0x02, 0x01, 0x7b}, got)
}

func TestEncodeConstructedNested(t *testing.T) {
	got := encodeAll(t, `(u16 (u2 "01")(u2 "02"))`, 0)
	want := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	assert.Equal(t, want, got)
}

func TestEncodeEmptyConstructed(t *testing.T) {
	got := encodeAll(t, `(u16 ())`, 0)
	assert.Equal(t, []byte{0x30, 0x00}, got)
}

func TestEncodeChunkingInvariance(t *testing.T) {
	sexpr := `(u16 (u2 "01")(u2 "02"))`
	whole := encodeAll(t, sexpr, 0)
	for size := 1; size <= len(sexpr); size++ {
		got := encodeAll(t, sexpr, size)
		assert.Equal(t, whole, got, "chunk size %d produced different output", size)
	}
}

func TestEncodeSyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"missing open paren", `u2 "01")`, ErrExpectedOpenParen},
		{"bad class letter", `(x2 "01")`, ErrInvalidClassLetter},
		{"bad hex digit", `(u2 "zz")`, ErrInvalidHexDigit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			e := NewEncoder(&out)
			s := &Stream{Data: []byte(c.in), EOF: true}
			e.Step(s)
			assert.ErrorIs(t, e.Err(), c.want)
		})
	}
}

func TestEncodeMultipleTopLevelDocuments(t *testing.T) {
	// Two independent top-level tags back to back, as a multi-record
	// CDR-style file would present them to a single Encoder instance.
	got := encodeAll(t, `(u2 "7b")(u1 "ff")`, 0)
	want := []byte{0x02, 0x01, 0x7b, 0x01, 0x01, 0xff}
	assert.Equal(t, want, got)
}

func TestEncodeMultipleTopLevelDocumentsChunked(t *testing.T) {
	sexpr := `(u2 "7b")(u16 (u2 "01")(u2 "02"))(u1 "ff")`
	whole := encodeAll(t, sexpr, 0)
	for size := 1; size <= len(sexpr); size++ {
		got := encodeAll(t, sexpr, size)
		assert.Equal(t, whole, got, "chunk size %d produced different output", size)
	}
}

func TestRoundTrip(t *testing.T) {
	sexpr := `(u16 (u2 "01")(u2 "02"))`
	der := encodeAll(t, sexpr, 0)
	got := decodeAll(t, der, 0)
	assert.Contains(t, got, "(u2 \"01\")")
	assert.Contains(t, got, "(u2 \"02\")")
}
