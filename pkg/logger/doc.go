// Package logger builds the slog loggers used by the textkit CLI and HTTP
// server.
//
// Records go to a JSON or text handler and, when a Sentry DSN is
// configured, to Sentry as well: errors become issues and warnings are kept
// as logs. Request-scoped values reach every record through context
// extractors:
//
//	log, err := logger.New(logger.Config{Level: "debug"},
//		logger.RequestIDExtractor(),
//		logger.LocaleExtractor(),
//	)
//
//	ctx = logger.WithRequestID(ctx, "7d0c6a1e-...")
//	log.InfoContext(ctx, "normalized", slog.String("pipeline", "slug"))
//	// {"level":"INFO","msg":"normalized","pipeline":"slug","request_id":"7d0c6a1e-..."}
//
// NewContextHandler wraps any slog.Handler the same way.
package logger
