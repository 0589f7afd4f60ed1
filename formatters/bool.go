package formatters

import "github.com/pkg/errors"

// Boolean renders a single DER BOOLEAN content octet: any non-zero
// byte is true, 0x00 is false.
func Boolean(raw []byte) (string, error) {
	if len(raw) != 1 {
		return "", errors.Errorf("BOOLEAN: 1 byte expected, %d received", len(raw))
	}
	if raw[0] != 0 {
		return "true", nil
	}
	return "false", nil
}
