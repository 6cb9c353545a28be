package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/pkg/logger"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.NewWithConfig(logger.Config{Level: "warn", Output: &buf})
		require.NoError(t, err)

		log.Info("ignored")
		assert.Zero(t, buf.Len())

		log.Warn("backend slow")
		assert.Equal(t, "backend slow", decode(t, &buf)["msg"])
	})

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.NewWithConfig(logger.Config{Output: &buf}, requestIDExtractor, nil)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.With("component", "panel").InfoContext(ctx, "bot created", slog.String("slug", "support-bot"))

		entry := decode(t, &buf)
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "panel", entry["component"])
		assert.Equal(t, "support-bot", entry["slug"])
	})

	t.Run("skips missing attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.NewWithConfig(logger.Config{Output: &buf}, requestIDExtractor)
		require.NoError(t, err)

		log.InfoContext(context.Background(), "no request")
		assert.NotContains(t, decode(t, &buf), "request_id")
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()
		_, err := logger.NewWithConfig(logger.Config{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	assert.NotPanics(t, func() { log.Error("discarded") })
}
