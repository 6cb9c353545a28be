package views_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/panel/views"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/slugsync"
	"github.com/sapujagad-id/botpanel/pkg/validator"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

var opts = requests.BotFormOptions{
	SlugEnabled: true,
	Models:      []string{"OpenAI", "Anthropic"},
	Adapters:    []string{"Slack"},
	DataSources: []string{"confluence", "drive"},
}

func TestBotList(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, render(t, views.BotList(nil)), "No chatbots yet.")
	})

	t.Run("rows are escaped", func(t *testing.T) {
		t.Parallel()
		html := render(t, views.BotListPage([]botapi.Bot{{
			ID:        "b1",
			Name:      "<script>x</script>",
			Slug:      "x",
			Model:     "OpenAI",
			UpdatedAt: botapi.Timestamp{Time: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		}}, &views.Flash{Kind: views.FlashSuccess, Message: "Chatbot created successfully!"}))

		assert.NotContains(t, html, "<script>x</script>")
		assert.Contains(t, html, "&lt;script&gt;x&lt;/script&gt;")
		assert.Contains(t, html, `hx-delete="/bots/b1"`)
		assert.Contains(t, html, `hx-confirm="`+views.DeleteConfirm+`"`)
		assert.Contains(t, html, `href="/bots/b1/edit"`)
		assert.Contains(t, html, "May 1, 2024 10:30")
		assert.Contains(t, html, `<div class="alert alert-success" role="alert">Chatbot created successfully!</div>`)
	})
}

func TestBotForm(t *testing.T) {
	t.Parallel()

	t.Run("create with slug field", func(t *testing.T) {
		t.Parallel()
		form := requests.NewBotRequest(opts)
		form.Model = "Anthropic"
		form.DataSources = []string{"drive"}

		html := render(t, views.BotFormPage(views.BotFormData{Form: form}))

		assert.Contains(t, html, `hx-post="/bots"`)
		assert.Contains(t, html, `hx-post="/bots/slug/name"`)
		assert.Contains(t, html, `id="slug-field" data-mode="auto"`)
		assert.Contains(t, html, `<option value="Anthropic" selected>Anthropic</option>`)
		assert.Contains(t, html, `<option value="OpenAI">OpenAI</option>`)
		assert.Contains(t, html, `<option value="drive" selected>drive</option>`)
		assert.Contains(t, html, `<option value="confluence">confluence</option>`)
		assert.Contains(t, html, "New chatbot")
	})

	t.Run("edit with errors and banner", func(t *testing.T) {
		t.Parallel()
		form := requests.NewBotRequest(opts)
		form.Name = `Bob's "bot"`
		errs := validator.ValidationErrors{{Field: "name", Message: "must not contain any of ' \" ; -"}}

		html := render(t, views.BotForm(views.BotFormData{
			BotID:  "b1",
			Form:   form,
			Errors: errs,
			Banner: "Slug already taken",
		}))

		assert.Contains(t, html, `hx-patch="/bots/b1"`)
		assert.Contains(t, html, `action="/bots/b1"`)
		assert.Contains(t, html, `value="Bob&#39;s &#34;bot&#34;"`)
		assert.Contains(t, html, `id="name-error"`)
		assert.Contains(t, html, "Error: Slug already taken")
		assert.Contains(t, html, "Edit chatbot")
	})

	t.Run("without slug field", func(t *testing.T) {
		t.Parallel()
		noSlug := opts
		noSlug.SlugEnabled = false
		html := render(t, views.BotForm(views.BotFormData{Form: requests.NewBotRequest(noSlug)}))

		assert.NotContains(t, html, "slug-field")
		assert.NotContains(t, html, "data_source")
		assert.NotContains(t, html, "/bots/slug/name")
	})

	t.Run("free-text data sources", func(t *testing.T) {
		t.Parallel()
		free := opts
		free.DataSources = nil
		form := requests.NewBotRequest(free)
		form.DataSources = []string{"a", "b"}

		html := render(t, views.BotForm(views.BotFormData{Form: form}))
		assert.Contains(t, html, `<input id="data_source" name="data_source" type="text" placeholder="comma separated" value="a,b">`)
	})
}

func TestSlugField(t *testing.T) {
	t.Parallel()

	html := render(t, views.SlugField(slugsync.State{Name: "A", Slug: "custom", UserEdited: true}, nil))

	assert.Contains(t, html, `data-mode="manual"`)
	assert.Contains(t, html, `value="custom"`)
	assert.Contains(t, html, `hx-post="/bots/slug/blur"`)
	assert.Contains(t, html, `hx-sync="#bot-form:queue all"`)
	assert.Contains(t, html, `<input id="user_edited" name="user_edited" type="hidden" value="true"`)
	assert.Contains(t, html, `hx-trigger="input from:#slug"`)
	assert.Contains(t, html, `hx-post="/bots/slug/edit" hx-trigger="input from:#slug" hx-target="this" hx-swap="outerHTML" hx-include="#name, #slug, #user_edited" hx-sync="#bot-form:replace"`)
	assert.NotContains(t, html, `id="slug-check"`)
	assert.NotContains(t, html, "Check availability")
}

func TestSlugSection(t *testing.T) {
	t.Parallel()

	html := render(t, views.SlugSection(slugsync.State{Name: "A", Slug: "a"}, nil))

	field := strings.Index(html, `</div>`)
	check := strings.Index(html, `id="slug-check"`)
	require.Positive(t, field)
	require.Positive(t, check)
	assert.Greater(t, check, field, "check result must sit outside #slug-field")
	assert.Contains(t, html, `hx-get="/bots/slug/check" hx-include="#slug" hx-target="#slug-check" hx-swap="outerHTML" hx-sync="#bot-form:queue all"`)
	assert.Contains(t, html, `<p id="slug-check" aria-live="polite"></p>`)
}

func TestSlugCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    templ.Component
		want string
	}{
		{"empty", views.SlugCheckEmpty(), `class="text-error">Slug cannot be empty.`},
		{"taken", views.SlugCheckResult(botapi.SlugTaken), `class="text-error">Slug already exists. Please choose another.`},
		{"available", views.SlugCheckResult(botapi.SlugAvailable), `class="text-success">Slug is unique!`},
		{"failed", views.SlugCheckFailed(), `class="text-error">Error checking slug. Please try again.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, render(t, tt.c), tt.want)
		})
	}
}

func TestUserAccessForm(t *testing.T) {
	t.Parallel()

	form := requests.NewUserAccessRequest(2)
	form.AccessLevel = "1"
	form.Fields = map[string]string{"note": "promoted", "team": "<ops>"}
	result := views.Success("Access level updated successfully")

	html := render(t, views.UserAccessPage(views.AccessFormData{
		UserID: "u1",
		Form:   form,
		Result: &result,
	}))

	assert.Contains(t, html, `hx-patch="/users/u1/access"`)
	assert.Contains(t, html, `<option value="1" selected>1</option>`)
	assert.Contains(t, html, `<option value="2">2</option>`)
	assert.NotContains(t, html, `<option value="3">`)
	assert.Contains(t, html, `<input type="hidden" name="note" value="promoted"><input type="hidden" name="team" value="&lt;ops&gt;">`)
	assert.Contains(t, html, "Access level updated successfully")
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	html := render(t, views.ErrorPage(502, "Bad Gateway", "Backend unavailable", "req-1"))
	assert.Contains(t, html, "<h1>502 Bad Gateway</h1>")
	assert.Contains(t, html, "Backend unavailable")
	assert.Contains(t, html, "<code>req-1</code>")
	assert.Contains(t, html, "<title>Bad Gateway | Bot Panel</title>")
	assert.Contains(t, html, ".text-error{color:#ef4444}")
	assert.Contains(t, html, ".text-success{color:#22c55e}")
	assert.Contains(t, html, ".alert-error{")

	assert.Empty(t, render(t, views.Alert(views.Flash{})))
	assert.Contains(t, render(t, views.Alert(views.Failure("nope"))), "alert-error")
}
