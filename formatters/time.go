package formatters

import (
	"strings"
	"time"
)

// GeneralizedTime parses content octets of a GeneralizedTime value
// (YYYYMMDDHHMMSS[.fff](Z|+-HHMM)) and re-renders it in RFC 3339.
func GeneralizedTime(raw []byte) (string, error) {
	return parseAndFormat(string(raw), "20060102150405")
}

// UTCTime parses content octets of a UTCTime value (YYMMDDHHMM[SS]Z)
// and re-renders it in RFC 3339.
func UTCTime(raw []byte) (string, error) {
	s := string(raw)
	if layout := "0601021504"; len(s) == len(layout)+1 && strings.HasSuffix(s, "Z") {
		return parseAndFormat(s, layout+"Z")
	}
	return parseAndFormat(s, "060102150405Z")
}

// parseAndFormat tries layout, then layout with a trailing "Z" or
// numeric zone appended, mirroring how DER times may or may not carry
// fractional seconds or an explicit zone suffix.
func parseAndFormat(raw, layout string) (string, error) {
	candidates := []string{layout, layout + "Z", layout + "-0700", layout + ".999Z"}
	var lastErr error
	for _, l := range candidates {
		if t, err := time.Parse(l, raw); err == nil {
			return t.Format(time.RFC3339), nil
		} else {
			lastErr = err
		}
	}
	return "", lastErr
}
