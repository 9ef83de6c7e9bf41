package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Span attribute keys shared by the runner and the telemetry adapters.
const (
	// AttrTarget marks a rule span and holds the rule's target label.
	AttrTarget = "predex.target"
	// AttrStep holds the kind of step a span covers.
	AttrStep = "predex.step"
	// AttrState holds the final rule state.
	AttrState = "predex.state"
	// AttrCached is set on rule spans that were skipped by the cache.
	AttrCached = "predex.cached"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals that a set of rules is planned for execution.
	EmitPlan(ctx context.Context, targets []string)
}

// Span represents a unit of work. Tool output is written to it.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]any)
		}
		cfg.Attributes[key] = value
	}
}
