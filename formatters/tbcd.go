package formatters

import (
	"strings"

	"github.com/pkg/errors"
)

// TBCD renders Telephony Binary Coded Decimal content octets as a
// decimal digit string. Each byte packs two digits, least-significant
// nibble first; a trailing run of 0xff bytes is padding and is
// dropped, and a nibble value of 0xf (15) in the high position marks a
// single odd trailing digit rather than an error, provided it is the
// final byte.
func TBCD(raw []byte) (string, error) {
	n := len(raw)
	for n != 0 && raw[n-1] == 0xff {
		n--
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		msn := (raw[i] & 0xf0) >> 4
		lsn := raw[i] & 0x0f

		if lsn >= 10 || (msn >= 10 && msn != 15) {
			return "", errors.Errorf("invalid TBCD byte: %02x", raw[i])
		}

		b.WriteByte('0' + lsn)

		if msn != 15 {
			b.WriteByte('0' + msn)
			continue
		}

		if i < n-1 {
			return "", errors.Errorf("invalid sequence of TBCD bytes: ..%02x %02x..", raw[i], raw[i+1])
		}
	}

	return b.String(), nil
}
