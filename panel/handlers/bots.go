package handlers

import (
	"errors"
	"net/http"

	"github.com/sapujagad-id/botpanel"
	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/panel/views"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
)

// Flash messages shown after bot changes.
const (
	MsgBotCreated = "Chatbot created successfully!"
	MsgBotUpdated = "Chatbot updated successfully!"
	MsgBotDeleted = "Chatbot deleted successfully!"
)

const botNotFound = "Bot not found"

// Bots serves the bot list, the chatbot form and deletion.
type Bots struct {
	api  BotAPI
	form requests.BotFormOptions
}

// NewBots creates the bot handler.
func NewBots(api BotAPI, form requests.BotFormOptions) *Bots {
	return &Bots{api: api, form: form}
}

// Routes implements botpanel.Handler. Paths are flat so the slug routes
// under /bots/slug can live in their own handler.
func (h *Bots) Routes(r botpanel.Router) {
	r.GET("/", h.list)
	r.GET("/bots/new", h.newForm)
	r.POST("/bots", h.create)
	r.GET("/bots/{id}/edit", h.editForm)
	r.PATCH("/bots/{id}", h.update)
	r.POST("/bots/{id}", h.update)
	r.DELETE("/bots/{id}", h.delete)
}

func (h *Bots) list(c botpanel.Context) error {
	bots, err := h.api.ListBots(c, botapi.ListOptions{
		Skip:  botpanel.QueryDefault(c, "skip", 0),
		Limit: botpanel.QueryDefault(c, "limit", 0),
	})
	if err != nil {
		return botpanel.ErrBadGateway(unavailableMessage, botpanel.WithError(err))
	}

	flash := takeFlash(c)
	return c.RenderPartial(http.StatusOK,
		views.BotListPage(bots, flash),
		views.BotList(bots),
	)
}

func (h *Bots) newForm(c botpanel.Context) error {
	return h.renderForm(c, http.StatusOK, views.BotFormData{Form: requests.NewBotRequest(h.form)})
}

func (h *Bots) editForm(c botpanel.Context) error {
	bot, err := h.api.GetBot(c, c.Param("id"))
	if err != nil {
		return lookupError(err, botNotFound)
	}
	return h.renderForm(c, http.StatusOK, views.BotFormData{
		BotID: bot.ID,
		Form:  requests.BotRequestFrom(*bot, h.form),
	})
}

func (h *Bots) create(c botpanel.Context) error {
	return h.submit(c, "")
}

func (h *Bots) update(c botpanel.Context) error {
	return h.submit(c, c.Param("id"))
}

// submit validates the form and sends it. Invalid forms never reach the backend.
func (h *Bots) submit(c botpanel.Context, botID string) error {
	form := requests.NewBotRequest(h.form)
	verrs, err := c.Bind(form)
	if err != nil {
		return botpanel.ErrBadRequest("The form could not be read.", botpanel.WithError(err))
	}

	data := views.BotFormData{BotID: botID, Form: form, Errors: verrs}
	if len(verrs) > 0 {
		return h.renderForm(c, http.StatusUnprocessableEntity, data)
	}

	msg := MsgBotCreated
	if botID == "" {
		err = h.api.CreateBot(c, form.Input())
	} else {
		msg = MsgBotUpdated
		err = h.api.UpdateBot(c, botID, form.Input())
	}
	if errors.Is(err, botapi.ErrInvalidID) {
		return lookupError(err, botNotFound)
	}
	if err != nil {
		c.LogWarn("bot save failed", "bot_id", botID, "error", err)
		data.Banner = botapi.DetailOf(err, unavailableMessage)
		return h.renderForm(c, backendStatus(err), data)
	}

	c.LogInfo("bot saved", "bot_id", botID, "name", form.Name)
	return redirectWithFlash(c, "/", views.Success(msg))
}

func (h *Bots) delete(c botpanel.Context) error {
	botID := c.Param("id")
	if err := h.api.DeleteBot(c, botID); err != nil {
		c.LogWarn("bot delete failed", "bot_id", botID, "error", err)
		detail := botapi.DetailOf(err, unavailableMessage)
		if errors.Is(err, botapi.ErrInvalidID) {
			detail = botNotFound
		}
		return redirectWithFlash(c, "/", views.Failure("Error: "+detail))
	}
	c.LogInfo("bot deleted", "bot_id", botID)
	return redirectWithFlash(c, "/", views.Success(MsgBotDeleted))
}

func (h *Bots) renderForm(c botpanel.Context, code int, d views.BotFormData) error {
	return c.RenderPartial(code, views.BotFormPage(d), views.BotForm(d))
}
