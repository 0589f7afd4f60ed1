package derex

import (
	"fmt"
	"strings"
)

// ExampleDecoder_Step pins the Decoder's S-expression rendering of a
// SEQUENCE holding two INTEGERs, the same fixture TestDecodeConstructedNested
// exercises with assert.Contains — this Example checks the whole string
// verbatim, including the nested-close cascade and indentation.
func ExampleDecoder_Step() {
	// SEQUENCE { INTEGER 1, INTEGER 2 }
	inner := []byte{0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	der := append([]byte{0x30, byte(len(inner))}, inner...)

	var out strings.Builder
	d := NewDecoder(&out, nopRegistry{})
	s := &Stream{Data: der, EOF: true}
	d.Step(s)

	fmt.Print(out.String())
	// Output:
	// (u16
	//     (u2 "01")
	//     (u2 "02"))
}
