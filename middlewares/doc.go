// Package middlewares provides the HTTP middleware the panel runs with.
//
// # Request ID
//
// RequestID tags each request with an ID, reusing X-Request-ID or
// X-Correlation-ID from upstream and generating a UUIDv7 otherwise. Pair it
// with RequestIDExtractor so every log line carries the ID:
//
//	app := botpanel.New(
//	    botpanel.WithLogger("panel", middlewares.RequestIDExtractor()),
//	    botpanel.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Request logging
//
// RequestLogger writes one line per request with method, path, status, size
// and duration. For htmx requests the logged status is the one the handler
// chose, not the 200 sent on the wire.
//
// # Recover
//
// Recover turns panics into *PanicError values for the app's ErrorHandler:
//
//	botpanel.WithErrorHandler(func(c botpanel.Context, err error) error {
//	    if middlewares.IsPanicError(err) {
//	        return c.String(http.StatusInternalServerError, "Internal Server Error")
//	    }
//	    ...
//	})
//
// # Order
//
//	botpanel.WithMiddleware(
//	    middlewares.RequestID(),     // first, so every later log line has the ID
//	    middlewares.RequestLogger(), // sees the final status
//	    middlewares.Recover(),       // innermost, converts handler panics
//	)
package middlewares
