package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Recorder emits one span per picker interaction. The showcase holds a
// single Recorder and calls Interaction whenever a picker message arrives.
// A nil Recorder records nothing, so callers never need to branch on
// whether tracing is configured.
type Recorder struct {
	tracer trace.Tracer
}

// NewRecorder creates a recorder over the given tracer.
// Pass a Provider's tracer; a disabled provider yields a no-op tracer and
// the recorder inherits that behavior.
func NewRecorder(tracer trace.Tracer) *Recorder {
	return &Recorder{tracer: tracer}
}

// Interaction records an instant span for a completed interaction.
// Picker interactions have no meaningful duration from the showcase's
// perspective, so the span starts and ends at the moment of recording.
func (r *Recorder) Interaction(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	if r == nil || r.tracer == nil {
		return
	}
	_, span := r.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(attrs...)
	span.SetStatus(codes.Ok, "")
	span.End()
}
