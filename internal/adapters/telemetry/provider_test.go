package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/predex/internal/adapters/telemetry"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/predex/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupMonitor(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func attrValue(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.Emit(), true
		}
	}
	return "", false
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
	var _ sdktrace.SpanProcessor = (*telemetry.Bridge)(nil)
}

func TestOTelTracer_StartAttributes(t *testing.T) {
	sr, tp := setupMonitor(t)
	tracer := telemetry.NewOTelTracer(tp)

	_, span := tracer.Start(context.Background(), "//app:core",
		ports.WithAttribute(ports.AttrTarget, "//app:core"),
	)
	span.SetAttribute("count", 3)
	span.SetAttribute("flags", []string{"--no-optimize"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := spans[0].Attributes()

	target, ok := attrValue(attrs, ports.AttrTarget)
	require.True(t, ok)
	assert.Equal(t, "//app:core", target)

	count, ok := attrValue(attrs, "count")
	require.True(t, ok)
	assert.Equal(t, "3", count)

	other, ok := attrValue(attrs, "other")
	require.True(t, ok)
	assert.Equal(t, "{1}", other)
}

func TestOTelTracer_StepOutputRoutedToRule(t *testing.T) {
	sr, tp := setupMonitor(t)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var loggedSpanID string
	var logged []byte
	renderer.EXPECT().OnRuleLog(gomock.Any(), gomock.Any()).DoAndReturn(func(spanID string, data []byte) {
		loggedSpanID = spanID
		logged = append(logged, data...)
	}).Times(1)

	tracer := telemetry.NewOTelTracer(tp).WithRenderer(renderer)

	ctx, rule := tracer.Start(context.Background(), "//app:core",
		ports.WithAttribute(ports.AttrTarget, "//app:core"),
	)
	_, step := tracer.Start(ctx, "dx --dex", ports.WithAttribute(ports.AttrStep, "dx"))

	n, err := step.Write([]byte("processing a/B.class\n"))
	require.NoError(t, err)
	assert.Equal(t, 21, n)

	step.End()
	rule.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	stepSpan, ruleSpan := spans[0], spans[1]

	assert.Equal(t, ruleSpan.SpanContext().SpanID().String(), loggedSpanID)
	assert.Equal(t, "processing a/B.class\n", string(logged))

	events := stepSpan.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log", events[0].Name)
	msg, ok := attrValue(events[0].Attributes, "message")
	require.True(t, ok)
	assert.Equal(t, "processing a/B.class\n", msg)
}

func TestOTelTracer_OutputOutsideRuleNotRendered(t *testing.T) {
	_, tp := setupMonitor(t)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnRuleLog(gomock.Any(), gomock.Any()).Times(0)

	tracer := telemetry.NewOTelTracer(tp).WithRenderer(renderer)

	_, span := tracer.Start(context.Background(), "index")
	_, err := span.Write([]byte("hello"))
	require.NoError(t, err)
	span.End()
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr, tp := setupMonitor(t)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnPlanEmit([]string{"//app:core", "//app:util"}).Times(2)

	tracer := telemetry.NewOTelTracer(tp).WithRenderer(renderer)

	// Without a recording span only the renderer is told.
	tracer.EmitPlan(context.Background(), []string{"//app:core", "//app:util"})
	assert.Empty(t, sr.Ended())

	ctx, span := tp.Tracer("test").Start(context.Background(), "build")
	tracer.EmitPlan(ctx, []string{"//app:core", "//app:util"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupMonitor(t)
	tracer := telemetry.NewOTelTracer(tp)

	_, span := tracer.Start(context.Background(), "//app:core")
	span.RecordError(errors.New("translation tool failed"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "translation tool failed", spans[0].Status().Description)
}

func TestOTelSpan_WriteAfterEnd(t *testing.T) {
	_, tp := setupMonitor(t)
	tracer := telemetry.NewOTelTracer(tp)

	_, span := tracer.Start(context.Background(), "//app:core")
	span.End()

	_, err := span.Write([]byte("late"))
	assert.ErrorIs(t, err, telemetry.ErrBatcherClosed)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span", ports.WithAttribute(ports.AttrTarget, "//a:b"))
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	tracer.EmitPlan(ctx, []string{"//a:b"})
	span.End()
}
