package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferLogger(buf *bytes.Buffer) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(buf), zapcore.DebugLevel))
}

func validSpanContext() trace.SpanContext {
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
}

func TestFromContext(t *testing.T) {
	l := zap.NewExample()
	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))

	assert.NotNil(t, FromContext(context.Background()))
}

func TestContextIDs(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithOwnerID(ctx, "owner-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "owner-1", GetOwnerID(ctx))
	assert.Empty(t, GetOwnerID(context.Background()))
}

func TestL_EnrichesWithContextFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), bufferLogger(&buf))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithOwnerID(ctx, "owner-456")
	ctx = trace.ContextWithSpanContext(ctx, validSpanContext())

	L(ctx).Info("test message", zap.String("extra_field", "extra_value"))

	output := buf.String()
	assert.Contains(t, output, `"request_id":"req-123"`)
	assert.Contains(t, output, `"owner_id":"owner-456"`)
	assert.Contains(t, output, `"trace_id":"0102030405060708090a0b0c0d0e0f10"`)
	assert.Contains(t, output, `"span_id":"0102030405060708"`)
	assert.Contains(t, output, `"extra_field":"extra_value"`)
}

func TestL_EmptyContextFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), bufferLogger(&buf))

	L(ctx).Info("plain")

	output := buf.String()
	assert.NotContains(t, output, "owner_id")
	assert.NotContains(t, output, "trace_id")
}

func TestEnrich_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Enrich(WithOwnerID(context.Background(), "x"), nil).Info("dropped")
	})
}

func TestGetTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := trace.ContextWithSpanContext(context.Background(), validSpanContext())
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", GetTraceID(ctx))
}
