package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/predex/internal/core/ports"
)

// InstrumentationName is the name predex spans are recorded under.
const InstrumentationName = "predex"

type ruleSpanKey struct{}

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
//
// Spans started with the ports.AttrTarget attribute are rule spans. Output
// written to a rule span or to any span below it is batched, recorded as
// "log" events and forwarded to the renderer under the rule span's ID.
type OTelTracer struct {
	tracer   trace.Tracer
	renderer ports.Renderer
}

// NewOTelTracer creates a tracer backed by provider.
func NewOTelTracer(provider trace.TracerProvider) *OTelTracer {
	return &OTelTracer{
		tracer: provider.Tracer(InstrumentationName),
	}
}

// WithRenderer sets the renderer that receives plan and log updates.
func (t *OTelTracer) WithRenderer(r ports.Renderer) *OTelTracer {
	t.renderer = r
	return t
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(cfg.Attributes)...))

	ruleSpanID, _ := ctx.Value(ruleSpanKey{}).(string)
	if _, isRule := cfg.Attributes[ports.AttrTarget]; isRule {
		ruleSpanID = span.SpanContext().SpanID().String()
		ctx = context.WithValue(ctx, ruleSpanKey{}, ruleSpanID)
	}

	s := &OTelSpan{span: span}
	s.batcher = NewBatchProcessor(0, 0, func(data []byte) {
		span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(data))))
		if t.renderer != nil && ruleSpanID != "" {
			t.renderer.OnRuleLog(ruleSpanID, data)
		}
	})

	return ctx, s
}

// EmitPlan records the planned targets on the current span and tells the renderer.
func (t *OTelTracer) EmitPlan(ctx context.Context, targets []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("targets", targets),
		))
	}
	if t.renderer != nil {
		t.renderer.OnPlanEmit(targets)
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *BatchProcessor
}

// End flushes pending output and completes the span.
func (s *OTelSpan) End() {
	_ = s.batcher.Close()
	s.span.End()
}

// RecordError records an error for the span and marks it failed.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

// Write buffers tool output for the span.
func (s *OTelSpan) Write(p []byte) (int, error) {
	return s.batcher.Write(p)
}

func toAttributes(attrs map[string]any) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, toAttribute(k, v))
	}
	return kvs
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
