package internal

// Handler declares routes on a router.
//
// Example:
//
//	type BotHandler struct {
//	    api *botapi.Client
//	}
//
//	func (h *BotHandler) Routes(r botpanel.Router) {
//	    r.GET("/", h.list)
//	    r.POST("/bots", h.create)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
