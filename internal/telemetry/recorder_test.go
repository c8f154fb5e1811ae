package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	r := NewRecorder(tp)
	t.Cleanup(func() { _ = r.Shutdown(context.Background()) })
	return r, sr
}

func TestRecord_EmitsSpanWithMappedAttributes(t *testing.T) {
	r, sr := newTestRecorder(t)

	r.Record(context.Background(), "panel.select", map[string]string{
		"id":      "dropdownTest",
		"id_path": "settings/dropdownTest",
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "panel.select", spans[0].Name())
	assert.Equal(t, InstrumentationName, spans[0].InstrumentationScope().Name)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("patternui.panel.id", "dropdownTest"),
		attribute.String("patternui.panel.id_path", "settings/dropdownTest"),
	}, spans[0].Attributes())
}

func TestRecord_UnknownKeysArePrefixed(t *testing.T) {
	got := Attributes(map[string]string{"toggled": "true", "zone": "rail"})
	assert.Equal(t, []attribute.KeyValue{
		attribute.String("patternui.sidebar.toggled", "true"),
		attribute.String("patternui.zone", "rail"),
	}, got)
}

func TestNewRecorder_NilProviderIsNoop(t *testing.T) {
	r := NewRecorder(nil)
	assert.NotPanics(t, func() {
		r.Record(context.Background(), "panel.select", nil)
	})
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestRecorder_NilReceiver(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Record(context.Background(), "panel.select", nil)
	})
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestNewOTLPProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	tp, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewOTLPProvider_DisabledFeedsRecorder(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	tp, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)

	r := NewRecorder(tp)
	assert.NotPanics(t, func() {
		r.Record(context.Background(), "sidebar.select", map[string]string{"id": "home"})
	})
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestNewOTLPProvider_WithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "sidebar-test")
	tp, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tp)
	require.IsType(t, &sdktrace.TracerProvider{}, tp)
	assert.NoError(t, NewRecorder(tp).Shutdown(context.Background()))
}
