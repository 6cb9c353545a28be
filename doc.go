// Package botpanel is the admin panel for managing chatbots served by the
// chatbot backend.
//
// The panel renders forms on the server, sends chatbot and user-access
// changes to the backend through pkg/botapi, and keeps the slug field in sync
// with the display name through htmx round-trips (see pkg/slugsync).
//
// This package re-exports the HTTP core from internal:
//
//	app := botpanel.New(
//	    botpanel.WithLogger("panel", middlewares.RequestIDExtractor()),
//	    botpanel.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	    ),
//	    botpanel.WithHandlers(
//	        handlers.NewBots(api, form),
//	        handlers.NewSlug(api),
//	        handlers.NewUsers(api, cfg.AccessLevelMax),
//	    ),
//	    botpanel.WithErrorHandler(handlers.ErrorHandler),
//	    botpanel.WithHealthChecks(
//	        botpanel.WithReadinessCheck("backend", api.Ping),
//	    ),
//	)
//
//	if err := app.Run(cfg.Addr, botpanel.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] and declare their routes:
//
//	func (h *Users) Routes(r botpanel.Router) {
//	    r.GET("/users/{id}/access", h.form)
//	    r.PATCH("/users/{id}/access", h.update)
//	}
//
// A [HandlerFunc] returns an error. An [HTTPError] keeps its status; any other
// error is a 500. The [ErrorHandler] decides how to render it.
//
// # htmx
//
// Responses to htmx requests are sent with status 200 whatever the handler
// chose, so htmx swaps validation errors into the page. The chosen status is
// still logged.
package botpanel
