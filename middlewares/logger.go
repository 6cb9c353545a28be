package middlewares

import (
	"log/slog"
	"strings"
	"time"

	"github.com/sapujagad-id/botpanel/internal"
)

// RequestLoggerConfig configures the request logging middleware.
type RequestLoggerConfig struct {
	SkipPrefixes []string
}

// RequestLoggerOption configures RequestLoggerConfig.
type RequestLoggerOption func(*RequestLoggerConfig)

// WithSkipPrefixes skips logging for paths starting with any prefix.
func WithSkipPrefixes(prefixes ...string) RequestLoggerOption {
	return func(cfg *RequestLoggerConfig) {
		cfg.SkipPrefixes = append(cfg.SkipPrefixes, prefixes...)
	}
}

// RequestLogger logs one line per request after the handler returns.
// The level follows the status the handler chose, which for htmx requests
// differs from the 200 sent on the wire.
func RequestLogger(opts ...RequestLoggerOption) internal.Middleware {
	cfg := &RequestLoggerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			path := c.Request().URL.Path
			for _, p := range cfg.SkipPrefixes {
				if strings.HasPrefix(path, p) {
					return next(c)
				}
			}

			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			if err != nil && !rw.Written() {
				status = statusOf(err)
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("htmx", c.IsHTMX()),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			switch {
			case status >= 500:
				c.LogError("request", attrs...)
			case status >= 400:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}

			return err
		}
	}
}

// statusOf guesses the status the error handler will pick.
func statusOf(err error) int {
	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		return httpErr.Code
	}
	return 500
}
