package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// setupTestTracer installs an in-memory span recorder as the global provider
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
	})

	return recorder
}

func TestStartSpan(t *testing.T) {
	t.Run("records span with name and attributes", func(t *testing.T) {
		recorder := setupTestTracer(t)

		ctx, span := StartSpan(context.Background(), "quote.calculate",
			WithAttribute("product_sku", "CAN-350"),
			WithAttribute("sale_price", 129.9),
		)
		span.End()

		require.NotNil(t, ctx)
		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "quote.calculate", spans[0].Name())
		assert.Equal(t, trace.SpanKindInternal, spans[0].SpanKind())

		attrs := spans[0].Attributes()
		require.Len(t, attrs, 2)
		assert.Equal(t, "product_sku", string(attrs[0].Key))
		assert.Equal(t, "CAN-350", attrs[0].Value.AsString())
	})

	t.Run("custom span kind", func(t *testing.T) {
		recorder := setupTestTracer(t)

		_, span := StartSpan(context.Background(), "mercadolivre.listing_fees",
			WithSpanKind(trace.SpanKindClient))
		span.End()

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	})
}

func TestStartServiceSpan(t *testing.T) {
	t.Run("names the span service.method", func(t *testing.T) {
		recorder := setupTestTracer(t)

		_, span := StartServiceSpan(context.Background(), "marketplace", "sync_fees")
		span.End()

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "marketplace.sync_fees", spans[0].Name())
	})
}

func TestRecordError(t *testing.T) {
	t.Run("sets error status and records the error event", func(t *testing.T) {
		recorder := setupTestTracer(t)

		_, span := StartSpan(context.Background(), "quote.calculate")
		RecordError(span, errors.New("marketplace not found"))
		span.End()

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "marketplace not found", spans[0].Status().Description)
		require.Len(t, spans[0].Events(), 1)
	})

	t.Run("nil error is a no-op", func(t *testing.T) {
		recorder := setupTestTracer(t)

		_, span := StartSpan(context.Background(), "quote.calculate")
		RecordError(span, nil)
		span.End()

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Unset, spans[0].Status().Code)
	})
}

func TestSetAttributes(t *testing.T) {
	t.Run("skips malformed key-value pairs", func(t *testing.T) {
		recorder := setupTestTracer(t)

		_, span := StartSpan(context.Background(), "quote.calculate")
		SetAttributes(span,
			"tenant_id", "t-1",
			42, "not-a-key",
			"count", 3,
		)
		span.End()

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Len(t, spans[0].Attributes(), 2)
	})
}

func TestGetTraceID(t *testing.T) {
	t.Run("returns the active trace ID", func(t *testing.T) {
		setupTestTracer(t)

		ctx, span := StartSpan(context.Background(), "quote.calculate")
		defer span.End()

		traceID := GetTraceID(ctx)
		assert.NotEmpty(t, traceID)
		assert.Equal(t, span.SpanContext().TraceID().String(), traceID)
	})

	t.Run("returns empty without a span", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	t.Run("disabled config yields a no-op provider", func(t *testing.T) {
		tp, err := NewTracerProvider(context.Background(), Config{Enabled: false}, zap.NewNop())

		require.NoError(t, err)
		assert.False(t, tp.IsEnabled())
		assert.NoError(t, tp.Shutdown(context.Background()))
		assert.NoError(t, tp.ForceFlush(context.Background()))
		assert.NoError(t, tp.EnableSpanProfiles())
		assert.False(t, tp.IsSpanProfilesEnabled())
	})
}

func TestNewProfiler_Disabled(t *testing.T) {
	t.Run("disabled config yields a no-op profiler", func(t *testing.T) {
		p, err := NewProfiler(ProfilerConfig{Enabled: false}, zap.NewNop())

		require.NoError(t, err)
		assert.False(t, p.IsEnabled())
		assert.NoError(t, p.Stop())
		assert.NoError(t, p.Stop())
	})

	t.Run("enabled config requires a server address", func(t *testing.T) {
		_, err := NewProfiler(ProfilerConfig{Enabled: true, ApplicationName: "precify-backend"}, zap.NewNop())
		assert.Error(t, err)
	})
}
