//go:build derex_debug

package derex

import (
	"sync"

	"go.uber.org/zap"
)

/*
trace_on.go backs package tracing with zap when this package is built
with "-tags derex_debug" (grounded in packetd's logger.go, which
configures a process-wide *zap.Logger the same way). Without the tag,
trace_off.go supplies the same call sites as no-ops, so production
builds pay nothing for the instrumentation.
*/

// Tracer receives traced events from a Decoder or Encoder.
type Tracer interface {
	Trace(event EventType, fields ...zap.Field)
}

type zapTracer struct {
	log *zap.Logger
}

func (t *zapTracer) Trace(event EventType, fields ...zap.Field) {
	t.log.Debug(eventName(event), fields...)
}

func eventName(e EventType) string {
	switch e {
	case EventHeader:
		return "header"
	case EventContent:
		return "content"
	case EventFormatter:
		return "formatter"
	case EventTree:
		return "tree"
	default:
		return "event"
	}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = newDefaultTracer()
)

func newDefaultTracer() Tracer {
	log, err := zap.NewDevelopment()
	if err != nil {
		log = zap.NewNop()
	}
	return &zapTracer{log: log}
}

// EnableDebug installs t as the package-wide Tracer.
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

// DisableDebug reverts to a no-op Tracer.
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &zapTracer{log: zap.NewNop()}
}

func currentTracer() Tracer {
	tmu.RLock()
	defer tmu.RUnlock()
	return tracer
}

func debugHeader(h Header) {
	currentTracer().Trace(EventHeader,
		zap.Int("class", int(h.Class)),
		zap.Uint32("number", h.Number),
		zap.Bool("constructed", h.Constructed),
		zap.Int("length", h.Length),
	)
}

func debugFormatterFailed(h Header, err error) {
	currentTracer().Trace(EventFormatter,
		zap.Uint32("number", h.Number),
		zap.Error(err),
	)
}
