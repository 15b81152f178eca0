package httperror_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/next-trace/scg-httperror/httperror"
)

func TestMarshalLogObject(t *testing.T) {
	t.Parallel()

	e := httperror.Must(httperror.Status(404), httperror.Message("customer not found"),
		httperror.Options{Cause: errors.New("row not found")})

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, e.MarshalLogObject(enc))
	require.Equal(t, map[string]any{
		"name":    "NotFoundError",
		"status":  404,
		"expose":  true,
		"message": "customer not found",
		"cause":   "row not found",
	}, enc.Fields)

	enc = zapcore.NewMapObjectEncoder()
	require.NoError(t, httperror.Must().MarshalLogObject(enc))
	require.NotContains(t, enc.Fields, "message")
	require.NotContains(t, enc.Fields, "cause")
}

func TestMarshalLogObject_WithLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	e := httperror.Must(httperror.Status(503), httperror.Options{Cause: map[string]any{"shard": 3}})
	logger.Warn("request failed", zap.Object("error", e))

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	logged, ok := fields["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ServiceUnavailableError", logged["name"])
	require.Equal(t, false, logged["expose"])
	require.Equal(t, map[string]any{"shard": 3}, logged["cause"])
}
