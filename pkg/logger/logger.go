package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config describes where and how textkit logs.
type Config struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is "json" or "text".
	Format string `yaml:"format"`
	// Output defaults to os.Stderr so command output stays clean on stdout.
	Output io.Writer `yaml:"-"`

	Sentry SentryConfig `yaml:"sentry"`
}

// New builds a logger from cfg. Context extractors run on every record,
// for stdout and Sentry alike. An empty Sentry DSN disables Sentry.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	if cfg.Sentry.DSN != "" {
		sentryHandler, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			// stdout keeps working without Sentry
			slog.New(handler).Error("failed to initialize sentry", slog.String("error", err.Error()))
		} else {
			handler = fanout(handler, sentryHandler)
		}
	}

	return slog.New(NewContextHandler(handler, extractors...)), nil
}

// ParseLevel reads a level name. "" means info.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}

// Discard returns a logger that drops everything. Packages use it when no
// logger was configured.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
