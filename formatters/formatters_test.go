package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolean(t *testing.T) {
	s, err := Boolean([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, "false", s)

	s, err = Boolean([]byte{0xff})
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	_, err = Boolean([]byte{0x01, 0x02})
	assert.Error(t, err)
}

func TestInteger(t *testing.T) {
	cases := []struct {
		raw  []byte
		want string
	}{
		{[]byte{0x00}, "0"},
		{[]byte{0x01}, "1"},
		{[]byte{0x7f}, "127"},
		{[]byte{0x00, 0x80}, "128"},
		{[]byte{0xff}, "-1"},
		{[]byte{0x80}, "-128"},
	}
	for _, c := range cases {
		got, err := Integer(c.raw)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := Integer(nil)
	assert.Error(t, err)
}

func TestOID(t *testing.T) {
	// 1.2.840.113549 (pkcs), DER: 2A 86 48 86 F7 0D
	raw := []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d}
	got, err := OID(raw)
	require.NoError(t, err)
	assert.Equal(t, "1.2.840.113549", got)
}

func TestRelativeOID(t *testing.T) {
	raw := []byte{0x08, 0x86, 0x48}
	got, err := RelativeOID(raw)
	require.NoError(t, err)
	assert.Equal(t, "8.840", got)
}

func TestTBCD(t *testing.T) {
	// digits "1234" -> bytes 0x21 0x43
	got, err := TBCD([]byte{0x21, 0x43})
	require.NoError(t, err)
	assert.Equal(t, "1234", got)

	// odd digit count "123" -> bytes 0x21 0xf3, trailing 0xf marks odd length
	got, err = TBCD([]byte{0x21, 0xf3})
	require.NoError(t, err)
	assert.Equal(t, "123", got)

	// trailing filler bytes are dropped
	got, err = TBCD([]byte{0x21, 0x43, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, "1234", got)

	_, err = TBCD([]byte{0xfa})
	assert.Error(t, err)
}

func TestCallTransactionType(t *testing.T) {
	got, err := CallTransactionType([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "MOBILE_TERMINATED (1)", got)

	_, err = CallTransactionType([]byte{0xff})
	assert.Error(t, err)

	_, err = CallTransactionType([]byte{0x01, 0x02})
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	got, err := Text([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestBMPString(t *testing.T) {
	// "Hi" in UTF-16BE
	raw := []byte{0x00, 'H', 0x00, 'i'}
	got, err := BMPString(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got)

	_, err = BMPString([]byte{0x00})
	assert.Error(t, err)
}

func TestUniversalString(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 'A', 0x00, 0x00, 0x00, 'B'}
	got, err := UniversalString(raw)
	require.NoError(t, err)
	assert.Equal(t, "AB", got)
}

func TestGeneralizedTime(t *testing.T) {
	got, err := GeneralizedTime([]byte("20250131120000Z"))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31T12:00:00Z", got)
}

func TestUTCTime(t *testing.T) {
	got, err := UTCTime([]byte("2501311200Z"))
	require.NoError(t, err)
	assert.Contains(t, got, "2025-01-31T12:00")
}
