package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/predex/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports the start and end of
// rule spans to a ports.Renderer. Step spans are ignored.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil || !s.SpanContext().IsValid() {
		return
	}
	target, ok := ruleTarget(s)
	if !ok {
		return
	}
	b.renderer.OnRuleStart(s.SpanContext().SpanID().String(), target, s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil || !s.SpanContext().IsValid() {
		return
	}
	if _, ok := ruleTarget(s); !ok {
		return
	}

	cached := false
	for _, kv := range s.Attributes() {
		if string(kv.Key) == ports.AttrCached {
			cached = kv.Value.AsBool()
		}
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "rule failed"
		}
		err = errors.New(desc)
	}
	b.renderer.OnRuleComplete(s.SpanContext().SpanID().String(), s.EndTime(), err, cached)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func ruleTarget(s sdktrace.ReadOnlySpan) (string, bool) {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == ports.AttrTarget {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}
