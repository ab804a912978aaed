package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_JSONWithExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Output: &buf},
		logger.RequestIDExtractor(),
		logger.LocaleExtractor(),
		nil,
	)
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithLocale(ctx, "de-DE")
	log.InfoContext(ctx, "normalized", slog.String("pipeline", "slug"))

	rec := decode(t, &buf)
	assert.Equal(t, "normalized", rec["msg"])
	assert.Equal(t, "slug", rec["pipeline"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "de-DE", rec["locale"])
}

func TestNew_SkipsEmptyContextValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Output: &buf}, logger.RequestIDExtractor())
	require.NoError(t, err)

	log.InfoContext(context.Background(), "plain")

	rec := decode(t, &buf)
	assert.NotContains(t, rec, "request_id")
}

func TestNew_LevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Level: "warn", Format: "text", Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", slog.Int("n", 3))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "n=3")

	_, err = logger.New(logger.Config{Format: "xml"})
	require.ErrorIs(t, err, logger.ErrInvalidFormat)

	_, err = logger.New(logger.Config{Level: "loud"})
	require.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			level, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestContextHandler_WithAttrsKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logger.NewContextHandler(slog.NewJSONHandler(&buf, nil), logger.LocaleExtractor())
	log := slog.New(h).With("component", "api").WithGroup("req")

	log.InfoContext(logger.WithLocale(context.Background(), "fr"), "hello", slog.String("path", "/slug"))

	rec := decode(t, &buf)
	assert.Equal(t, "api", rec["component"])
	group, ok := rec["req"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/slug", group["path"])
	assert.Equal(t, "fr", group["locale"])
}

func TestContextAccessors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, logger.RequestID(ctx))
	assert.Empty(t, logger.Locale(ctx))

	ctx = logger.WithLocale(logger.WithRequestID(ctx, "abc"), "pl")
	assert.Equal(t, "abc", logger.RequestID(ctx))
	assert.Equal(t, "pl", logger.Locale(ctx))
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
