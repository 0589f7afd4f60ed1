//go:build !derex_debug

package derex

// Tracer receives traced events from a Decoder or Encoder. The
// derex_debug build tag is required for any implementation to
// actually be invoked; see trace_on.go.
type Tracer interface {
	Trace(event EventType)
}

// EnableDebug is a no-op outside a derex_debug build.
func EnableDebug(Tracer) {}

// DisableDebug is a no-op outside a derex_debug build.
func DisableDebug() {}

func debugHeader(Header) {}

func debugFormatterFailed(Header, error) {}
