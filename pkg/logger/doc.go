// Package logger builds the panel's structured logger.
//
// Logs are JSON on stdout. Request-scoped values such as the request ID are
// added by context extractors on every call:
//
//	log, err := logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "bot created", slog.String("slug", "support-bot"))
//	// {"level":"INFO","msg":"bot created","slug":"support-bot","request_id":"01J..."}
//
// When Config.SentryDSN is set, warnings and errors are also sent to Sentry
// (errors create issues). Without a DSN, or if Sentry fails to initialize,
// logging continues to stdout only. Call Flush during shutdown so buffered
// Sentry events are delivered.
//
// NewLogHandlerDecorator wraps any slog.Handler with the same extraction
// behavior, and Discard returns a logger that discards everything.
package logger
