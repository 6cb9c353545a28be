// Package internal provides the HTTP core of the panel.
//
// Import "github.com/sapujagad-id/botpanel" instead; it re-exports the
// public API.
//
// # Core Types
//
//   - App: routing, middleware, health endpoints and graceful shutdown
//   - Context: request/response access plus rendering, binding, flash and logging helpers
//   - Router: the interface handlers use to declare routes
//   - Handler: a type that declares routes
//   - HandlerFunc: a route handler that returns an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned by handlers
//
// Context embeds context.Context, so it can be passed straight to the
// backend client:
//
//	func (h *Bots) list(c botpanel.Context) error {
//	    bots, err := h.api.ListBots(c, botapi.ListOptions{})
//	    if err != nil {
//	        return err
//	    }
//	    return c.Render(http.StatusOK, views.BotList(bots))
//	}
//
// # htmx
//
// Every response goes through a ResponseWriter that rewrites non-200
// statuses to 200 for htmx requests, because htmx only swaps 2xx bodies.
// The original status stays available through ResponseWriter().Status()
// for logging. Render applies htmx render options only to htmx requests,
// and Redirect answers htmx requests with HX-Redirect.
//
// # Binding
//
// Bind decodes form values into a struct using "form" tags. BindJSON does the
// same for JSON bodies. After decoding, a struct implementing Sanitizer has
// Sanitize called, and one implementing Validator has Validate called. Field
// errors come back as ValidationErrors; everything else is a system error.
//
//	var req requests.SlugEvent
//	verrs, err := c.Bind(&req)
//	if err != nil {
//	    return err
//	}
//	if verrs != nil {
//	    // re-render the form with field errors
//	}
//
// # Errors
//
// Handlers return errors. An *HTTPError carries the status and user-facing
// message; any other error becomes a 500 in the configured ErrorHandler.
// Nothing is rendered if the handler already wrote a response.
package internal
