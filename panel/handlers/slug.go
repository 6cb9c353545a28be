package handlers

import (
	"net/http"

	"github.com/sapujagad-id/botpanel"
	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/panel/views"
	"github.com/sapujagad-id/botpanel/pkg/htmx"
	"github.com/sapujagad-id/botpanel/pkg/slugsync"
)

// Slug serves the slug field round-trips and the uniqueness check.
type Slug struct {
	api SlugChecker
}

// NewSlug creates the slug handler.
func NewSlug(api SlugChecker) *Slug {
	return &Slug{api: api}
}

// Routes implements botpanel.Handler.
func (h *Slug) Routes(r botpanel.Router) {
	r.GET("/bots/slug/check", h.check)
	r.POST("/bots/slug/{event}", h.event)
}

// event applies one field event to the state carried by the form.
// Slug edits answer with the hidden flag only. Name changes in manual mode
// leave the field alone. Everything else re-renders the whole slug field.
func (h *Slug) event(c botpanel.Context) error {
	kind, err := slugsync.ParseEventKind(c.Param("event"))
	if err != nil || kind == slugsync.EventLoad {
		return botpanel.ErrNotFound("Unknown slug event", botpanel.WithError(err))
	}

	var req requests.SlugEvent
	if _, err := c.Bind(&req); err != nil {
		return botpanel.ErrBadRequest("The form could not be read.", botpanel.WithError(err))
	}

	state := slugsync.Replay(req.State(), req.Event(kind))
	c.LogDebug("slug event", "event", string(kind), "mode", string(state.Mode()))

	switch {
	case kind == slugsync.EventSlugEdited:
		return c.Render(http.StatusOK, views.UserEditedInput(state.UserEdited))
	case kind == slugsync.EventNameChanged && state.UserEdited:
		return c.Render(http.StatusOK, views.SlugField(state, nil), htmx.WithReswap(htmx.SwapNone))
	}
	return c.Render(http.StatusOK, views.SlugField(state, nil))
}

// check renders one of four outcomes. A blank slug never reaches the backend.
func (h *Slug) check(c botpanel.Context) error {
	var q requests.SlugCheck
	if _, err := c.Bind(&q); err != nil {
		return botpanel.ErrBadRequest("The query could not be read.", botpanel.WithError(err))
	}
	if q.Blank() {
		return c.Render(http.StatusOK, views.SlugCheckEmpty())
	}

	status, err := h.api.CheckSlug(c, q.Slug)
	if err != nil {
		c.LogWarn("slug check failed", "slug", q.Slug, "error", err)
		return c.Render(http.StatusOK, views.SlugCheckFailed())
	}
	return c.Render(http.StatusOK, views.SlugCheckResult(status))
}
