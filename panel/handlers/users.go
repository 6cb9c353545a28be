package handlers

import (
	"net/http"

	"github.com/sapujagad-id/botpanel"
	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/panel/views"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/id"
)

// Users serves the user access form.
type Users struct {
	api      AccessUpdater
	maxLevel int
}

// NewUsers creates the user access handler accepting levels up to maxLevel.
func NewUsers(api AccessUpdater, maxLevel int) *Users {
	return &Users{api: api, maxLevel: maxLevel}
}

// Routes implements botpanel.Handler.
func (h *Users) Routes(r botpanel.Router) {
	r.GET("/users/{id}/access", h.form)
	r.PATCH("/users/{id}/access", h.update)
	r.POST("/users/{id}/access", h.update)
}

func (h *Users) form(c botpanel.Context) error {
	userID, err := id.Parse(c.Param("id"))
	if err != nil {
		return botpanel.ErrNotFound("User not found", botpanel.WithError(err))
	}
	return h.render(c, http.StatusOK, views.AccessFormData{
		UserID: userID,
		Form:   requests.NewUserAccessRequest(h.maxLevel),
	})
}

// update sends the new level. The user id travels in the path only.
func (h *Users) update(c botpanel.Context) error {
	userID, err := id.Parse(c.Param("id"))
	if err != nil {
		return botpanel.ErrNotFound("User not found", botpanel.WithError(err))
	}

	form := requests.NewUserAccessRequest(h.maxLevel)
	verrs, err := c.Bind(form)
	if err != nil {
		return botpanel.ErrBadRequest("The form could not be read.", botpanel.WithError(err))
	}
	values, err := c.FormValues()
	if err != nil {
		return botpanel.ErrBadRequest("The form could not be read.", botpanel.WithError(err))
	}
	form.CollectFields(values)

	data := views.AccessFormData{UserID: userID, Form: form, Errors: verrs}
	if len(verrs) > 0 {
		return h.render(c, http.StatusUnprocessableEntity, data)
	}

	msg, err := h.api.UpdateUserAccess(c, userID, form.Input())
	if err != nil {
		c.LogWarn("access update failed", "user_id", userID, "error", err)
		result := views.Failure(botapi.DetailOf(err, unavailableMessage))
		data.Result = &result
		return h.render(c, backendStatus(err), data)
	}

	c.LogInfo("access updated", "user_id", userID, "access_level", form.Level())
	result := views.Success(msg)
	data.Result = &result
	return h.render(c, http.StatusOK, data)
}

func (h *Users) render(c botpanel.Context, code int, d views.AccessFormData) error {
	return c.RenderPartial(code, views.UserAccessPage(d), views.UserAccessForm(d))
}
