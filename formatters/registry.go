// Package formatters provides the built-in value-rendering functions
// for primitive ASN.1 content octets: the general-purpose types from
// X.680 (BOOLEAN, INTEGER, the string and time types, OBJECT
// IDENTIFIER) plus two telephony-specific renderers (TBCD digit
// strings and call transaction type codes) ported from the plugin
// codecs of the system this package's formats were drawn from.
//
// Each formatter has the shape of derex.Formatter but does not import
// the derex package, so that a caller's config loader can resolve a
// formatter by name without creating an import cycle; repr.LoadConfig
// adapts ByName's results into a derex.Formatter.
package formatters

// ByName is the lookup table a config loader uses to resolve a
// formatter function named in a --format file to its implementation.
var ByName = map[string]func([]byte) (string, error){
	"boolean":             Boolean,
	"integer":             Integer,
	"text":                Text,
	"bmpString":           BMPString,
	"universalString":     UniversalString,
	"objectIdentifier":    OID,
	"relativeOID":         RelativeOID,
	"tbcd":                TBCD,
	"callTransactionType": CallTransactionType,
	"generalizedTime":     GeneralizedTime,
	"utcTime":             UTCTime,
}
