package repr

import (
	"github.com/dereks/derex"
	"github.com/dereks/derex/formatters"
)

// universalFormatters pairs the universal tags that have a natural
// default rendering with the formatter that renders them. Tags with
// no entry here (BIT STRING, OCTET STRING, NULL, SEQUENCE, SET,
// CHARACTER STRING, and so on) are left without a formatter, so the
// Decoder falls back to hex.
var universalFormatters = map[uint32]derex.Formatter{
	1:  formatters.Boolean,
	2:  formatters.Integer,
	6:  formatters.OID,
	10: formatters.Integer, // ENUMERATED shares INTEGER's content encoding
	12: formatters.Text,    // UTF8String
	13: formatters.RelativeOID,
	18: formatters.Text, // NumericString
	19: formatters.Text, // PrintableString
	20: formatters.Text, // T61String
	21: formatters.Text, // VideotexString
	22: formatters.Text, // IA5String
	23: formatters.UTCTime,
	24: formatters.GeneralizedTime,
	25: formatters.Text, // GraphicString
	26: formatters.Text, // VisibleString
	27: formatters.Text, // GeneralString
	28: formatters.UniversalString,
	30: formatters.BMPString,
}

// universalNames mirrors ITU-T X.680's clause 8 universal class tag
// assignments. It is the built-in table NewDefault seeds a Registry
// with, so that a document can be rendered legibly even before any
// application-specific --format file is loaded.
var universalNames = map[uint32]string{
	1:  "BOOLEAN",
	2:  "INTEGER",
	3:  "BIT STRING",
	4:  "OCTET STRING",
	5:  "NULL",
	6:  "OBJECT IDENTIFIER",
	7:  "OBJECT DESCRIPTOR",
	8:  "EXTERNAL",
	9:  "REAL",
	10: "ENUMERATED",
	11: "EMBEDDED PDV",
	12: "UTF8String",
	13: "RELATIVE-OID",
	16: "SEQUENCE",
	17: "SET",
	18: "NumericString",
	19: "PrintableString",
	20: "T61String",
	21: "VideotexString",
	22: "IA5String",
	23: "UTCTime",
	24: "GeneralizedTime",
	25: "GraphicString",
	26: "VisibleString",
	27: "GeneralString",
	28: "UniversalString",
	29: "CHARACTER STRING",
	30: "BMPString",
}

// NewDefault returns a Registry seeded with ITU-T X.680's universal
// class tag names and the general-purpose value formatters from the
// formatters package that derex ships for them (booleans, integers,
// OIDs, the string types, and the two time formats). Callers layer
// application-specific entries on top with Register or LoadConfig.
func NewDefault() *Registry {
	r := New()
	for num, name := range universalNames {
		r.Register(derex.ClassUniversal, num, name, universalFormatters[num])
	}
	return r
}
