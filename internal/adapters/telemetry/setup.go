package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/predex/internal/core/ports"
)

// NewProvider creates a tracer provider that reports rule spans to renderer.
// Additional processors, such as exporters, can be passed in opts.
// The caller must Shutdown the provider once the build is finished.
func NewProvider(renderer ports.Renderer, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	opts = append(opts, sdktrace.WithSpanProcessor(NewBridge(renderer)))
	return sdktrace.NewTracerProvider(opts...)
}
