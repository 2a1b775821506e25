package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_NotFound(t *testing.T) {
	retrieved := FromContext(context.Background())
	assert.NotNil(t, retrieved, "should return a no-op logger, never nil")
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), base, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}

func TestWithTenantID(t *testing.T) {
	ctx, enriched := WithTenantID(context.Background(), zap.NewNop(), "tenant-1")
	assert.Equal(t, "tenant-1", GetTenantID(ctx))
	assert.NotNil(t, enriched)
}

func TestWithUserID(t *testing.T) {
	ctx, enriched := WithUserID(context.Background(), zap.NewNop(), "user-1")
	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.NotNil(t, enriched)
}

func TestGetters_NotFound(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetTenantID(ctx))
	assert.Empty(t, GetUserID(ctx))
}

func TestContextChaining(t *testing.T) {
	ctx := context.Background()
	ctx, _ = WithRequestID(ctx, zap.NewNop(), "req-1")
	ctx, _ = WithTenantID(ctx, zap.NewNop(), "tenant-1")
	ctx, _ = WithUserID(ctx, zap.NewNop(), "user-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "tenant-1", GetTenantID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")
	retrieved := FromContext(ctx)
	assert.NotNil(t, retrieved)
}

func TestWithTraceContext_NoSpan(t *testing.T) {
	logger := zap.NewNop()
	enriched := WithTraceContext(context.Background(), logger)

	// without a valid span the logger comes back unchanged
	assert.Same(t, logger, enriched)
}
