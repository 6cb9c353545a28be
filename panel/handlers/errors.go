package handlers

import (
	"net/http"

	"github.com/sapujagad-id/botpanel"
	"github.com/sapujagad-id/botpanel/middlewares"
	"github.com/sapujagad-id/botpanel/panel/views"
	"github.com/sapujagad-id/botpanel/pkg/htmx"
)

// ErrorHandler renders handler errors. Full page loads get an error page;
// htmx requests get a banner swapped into #alerts so the form stays editable.
func ErrorHandler(c botpanel.Context, err error) error {
	httpErr := botpanel.AsHTTPError(err)
	if httpErr == nil {
		httpErr = botpanel.ErrInternal("Something went wrong. Please try again.", botpanel.WithError(err))
	}
	if httpErr.RequestID == "" {
		httpErr.RequestID = middlewares.GetRequestID(c)
	}

	attrs := []any{"status", httpErr.Code, "error", err}
	if middlewares.IsPanicError(err) || httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed", attrs...)
	} else {
		c.LogWarn("request failed", attrs...)
	}

	title := httpErr.Title
	if title == "" {
		title = httpErr.StatusText()
	}

	return c.RenderPartial(httpErr.Code,
		views.ErrorPage(httpErr.Code, title, httpErr.Message, httpErr.RequestID),
		views.Alert(views.Failure(httpErr.Message)),
		htmx.WithRetarget("#alerts"),
		htmx.WithReswap(htmx.SwapInnerHTML),
	)
}

// NotFound renders the 404 page.
func NotFound(c botpanel.Context) error {
	return ErrorHandler(c, botpanel.ErrNotFound("Page not found"))
}

// MethodNotAllowed renders the 405 page.
func MethodNotAllowed(c botpanel.Context) error {
	return ErrorHandler(c, botpanel.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed"))
}
