package formatters

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// OID renders the DER content octets of an OBJECT IDENTIFIER as a
// dotted-decimal string, undoing the X.690 clause 8.19 arc-combining
// convention: the first subidentifier encodes both of the first two
// arcs as 40*X+Y (or, for X=2, an arbitrarily large Y beyond 80).
func OID(raw []byte) (string, error) {
	arcs, err := decodeArcs(raw)
	if err != nil {
		return "", err
	}
	if len(arcs) == 0 {
		return "", errors.New("empty OBJECT IDENTIFIER")
	}
	first, second := splitFirstArcs(arcs[0])
	all := append([]*big.Int{first, second}, arcs[1:]...)
	return joinArcs(all), nil
}

// RelativeOID renders the content octets of a RELATIVE-OID, which has
// no arc-combining first subidentifier: every subidentifier is its own
// arc.
func RelativeOID(raw []byte) (string, error) {
	arcs, err := decodeArcs(raw)
	if err != nil {
		return "", err
	}
	if len(arcs) == 0 {
		return "", errors.New("empty RELATIVE-OID")
	}
	return joinArcs(arcs), nil
}

// decodeArcs splits DER content octets into their base-128,
// continuation-bit-delimited subidentifiers.
func decodeArcs(data []byte) ([]*big.Int, error) {
	arcs := make([]*big.Int, 0, len(data))
	i := 0
	for i < len(data) {
		sub := big.NewInt(0)
		for {
			sub.Lsh(sub, 7)
			sub.Or(sub, big.NewInt(int64(data[i]&0x7f)))
			last := data[i]&0x80 == 0
			i++
			if last {
				break
			}
			if i >= len(data) {
				return nil, errors.New("truncated OID subidentifier")
			}
		}
		arcs = append(arcs, sub)
	}
	return arcs, nil
}

var (
	big40 = big.NewInt(40)
	big80 = big.NewInt(80)
)

// splitFirstArcs recovers the first two arcs folded into arcs[0] by
// X.690's 40*X+Y convention: X in {0,1} when the combined value is
// below 80, else X=2 with Y = combined-80 (Y may be arbitrarily large,
// hence the multi-octet subidentifier encoding in that case).
func splitFirstArcs(combined *big.Int) (first, second *big.Int) {
	if combined.Cmp(big80) < 0 {
		first = new(big.Int).Div(combined, big40)
		second = new(big.Int).Mod(combined, big40)
		return
	}
	first = big.NewInt(2)
	second = new(big.Int).Sub(combined, big80)
	return
}

func joinArcs(arcs []*big.Int) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ".")
}
