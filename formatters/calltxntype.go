package formatters

import (
	"strconv"

	"github.com/pkg/errors"
)

// callTransactionTypes maps the single-octet call transaction type
// values used by 3GPP/TAP-style call detail records to their mnemonic
// names. The enumeration these values are drawn from ships as a
// vendor-private header in the system this package's TBCD and OID
// formatters were ported from; that header was not available to
// ground this table on, so the entries below are a reasonable,
// explicitly invented stand-in covering the common TAP record types
// rather than a verified reproduction of any specific vendor's table.
var callTransactionTypes = map[byte]string{
	0:  "MOBILE_ORIGINATED",
	1:  "MOBILE_TERMINATED",
	2:  "CALL_FORWARDING",
	3:  "SUPPLEMENTARY_SERVICE",
	4:  "SMS_MO",
	5:  "SMS_MT",
	6:  "GPRS",
	7:  "CONTENT_TRANSACTION",
}

// CallTransactionType renders the single content octet of a call
// transaction type value as its mnemonic name followed by the raw
// numeric value in parentheses.
func CallTransactionType(raw []byte) (string, error) {
	if len(raw) != 1 {
		return "", errors.Errorf("callTransactionType: 1 byte expected, %d received", len(raw))
	}
	x := raw[0]
	name, ok := callTransactionTypes[x]
	if !ok {
		return "", errors.Errorf("callTransactionType: unsupported value (%d)", x)
	}
	return name + " (" + strconv.Itoa(int(x)) + ")", nil
}
