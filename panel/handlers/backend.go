package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sapujagad-id/botpanel"
	"github.com/sapujagad-id/botpanel/panel/views"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/cookie"
)

// BotAPI is the part of the backend client the bot pages use.
type BotAPI interface {
	ListBots(ctx context.Context, opts botapi.ListOptions) ([]botapi.Bot, error)
	GetBot(ctx context.Context, botID string) (*botapi.Bot, error)
	CreateBot(ctx context.Context, in botapi.BotInput) error
	UpdateBot(ctx context.Context, botID string, in botapi.BotInput) error
	DeleteBot(ctx context.Context, botID string) error
}

// SlugChecker checks slug uniqueness.
type SlugChecker interface {
	CheckSlug(ctx context.Context, slug string) (botapi.SlugStatus, error)
}

// AccessUpdater changes user access levels.
type AccessUpdater interface {
	UpdateUserAccess(ctx context.Context, userID string, in botapi.UserAccessInput) (string, error)
}

const unavailableMessage = "The chatbot service is unavailable. Please try again."

// backendStatus maps a backend failure to the status the panel answers with.
// Client errors keep their status; everything else is a bad gateway.
func backendStatus(err error) int {
	var apiErr *botapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// lookupError turns a failed record lookup into an HTTPError.
func lookupError(err error, notFound string) error {
	if errors.Is(err, botapi.ErrInvalidID) || botapi.IsNotFound(err) {
		return botpanel.ErrNotFound(notFound, botpanel.WithError(err))
	}
	return botpanel.ErrBadGateway(unavailableMessage, botpanel.WithError(err))
}

// takeFlash reads and clears the pending flash, if any.
func takeFlash(c botpanel.Context) *views.Flash {
	var f views.Flash
	if err := c.Flash(views.FlashKey, &f); err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			c.LogWarn("unreadable flash", "error", err)
		}
		return nil
	}
	return &f
}

// redirectWithFlash stores f and sends the browser to target.
func redirectWithFlash(c botpanel.Context, target string, f views.Flash) error {
	if err := c.SetFlash(views.FlashKey, f); err != nil {
		c.LogWarn("flash not stored", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
