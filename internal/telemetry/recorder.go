package telemetry

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName is the tracer name spans are recorded under.
const InstrumentationName = "patternui/sidebar"

// Recorder turns sidebar events into zero-length spans.
type Recorder struct {
	provider trace.TracerProvider
	tracer   trace.Tracer
}

// NewRecorder records spans on tp. A nil tp records nothing.
func NewRecorder(tp trace.TracerProvider) *Recorder {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Recorder{provider: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Record emits one span named name with attrs mapped into the
// patternui.* namespace.
func (r *Recorder) Record(ctx context.Context, name string, attrs map[string]string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, name)
	span.SetAttributes(Attributes(attrs)...)
	span.End()
}

// Attributes maps event attributes to span attributes in a stable order.
func Attributes(attrs map[string]string) []attribute.KeyValue {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		var name string
		switch k {
		case "id":
			name = "patternui.panel.id"
		case "id_path":
			name = "patternui.panel.id_path"
		case "open":
			name = "patternui.panel.open"
		case "toggled":
			name = "patternui.sidebar.toggled"
		default:
			name = "patternui." + k
		}
		out = append(out, attribute.String(name, attrs[k]))
	}
	return out
}

type shutdowner interface {
	Shutdown(context.Context) error
}

// Shutdown flushes and closes the provider when it supports it.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	if s, ok := r.provider.(shutdowner); ok {
		return s.Shutdown(ctx)
	}
	return nil
}
