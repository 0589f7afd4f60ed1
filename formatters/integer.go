package formatters

import (
	"math/big"

	"github.com/pkg/errors"
)

// Integer renders the content octets of an INTEGER or ENUMERATED tag
// as a decimal string, undoing DER's two's-complement, minimal-length
// big-endian encoding.
func Integer(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", errors.New("INTEGER: empty content")
	}
	val := new(big.Int).SetBytes(raw)
	if raw[0]&0x80 != 0 {
		bitLen := uint(len(raw) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val.String(), nil
}
