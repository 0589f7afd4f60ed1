package derex

import (
	"bytes"
	"testing"

	ber "github.com/go-asn1-ber/asn1-ber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeCrossValidatesAsValidDER feeds the Encoder's output to an
// independent DER parser, catching any header/length encoding mistake
// that happens to still decode correctly under this package's own
// Decoder but not under someone else's implementation.
func TestEncodeCrossValidatesAsValidDER(t *testing.T) {
	cases := []struct {
		name     string
		sexpr    string
		number   int
		children int
	}{
		{"primitive", `(u2 "7b")`, 2, 0},
		{"constructed", `(u16 (u2 "01")(u2 "02"))`, 16, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			der := encodeAll(t, c.sexpr, 0)

			pkt, err := ber.ReadPacket(bytes.NewReader(der))
			require.NoError(t, err)
			require.NotNil(t, pkt)

			assert.Equal(t, c.number, int(pkt.Tag))
			assert.Len(t, pkt.Children, c.children)
		})
	}
}
