package formatters

import "github.com/pkg/errors"

// Text renders content octets that are already a printable byte
// string as-is: UTF8String, IA5String, PrintableString, NumericString,
// VisibleString, GraphicString, GeneralString and T61String all share
// this representation at the content-octet level.
func Text(raw []byte) (string, error) {
	return string(raw), nil
}

// BMPString renders content octets holding a sequence of big-endian
// 16-bit code units (X.680 clause 41, excluding surrogate-pair
// handling for characters outside the Basic Multilingual Plane).
func BMPString(raw []byte) (string, error) {
	if len(raw)%2 != 0 {
		return "", errors.Errorf("BMPString: odd content length %d", len(raw))
	}
	runes := make([]rune, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		runes = append(runes, rune(raw[i])<<8|rune(raw[i+1]))
	}
	return string(runes), nil
}

// UniversalString renders content octets holding a sequence of
// big-endian 32-bit code points (X.680 clause 37).
func UniversalString(raw []byte) (string, error) {
	if len(raw)%4 != 0 {
		return "", errors.Errorf("UniversalString: content length %d not a multiple of 4", len(raw))
	}
	runes := make([]rune, 0, len(raw)/4)
	for i := 0; i+3 < len(raw); i += 4 {
		r := rune(raw[i])<<24 | rune(raw[i+1])<<16 | rune(raw[i+2])<<8 | rune(raw[i+3])
		runes = append(runes, r)
	}
	return string(runes), nil
}
