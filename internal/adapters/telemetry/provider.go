package telemetry

import (
	"github.com/pubaudit/pubaudit/internal/core/ports"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// instrumentationName identifies this tracer in span metadata.
const instrumentationName = "pubaudit"

// NewProvider wires a TracerProvider whose package spans are forwarded
// synchronously to the reporter, and returns it together with the ports.Tracer
// the engine uses. The caller owns the provider's Shutdown.
func NewProvider(reporter ports.Reporter) (*sdktrace.TracerProvider, ports.Tracer) {
	bridge := NewBridge(reporter)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	return tp, NewOTelTracer(tp, instrumentationName)
}
