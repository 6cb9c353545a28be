package views

import (
	"context"
	"io"
	"slices"

	"github.com/a-h/templ"

	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/validator"
)

// DeleteConfirm is shown by the browser before a bot is deleted.
const DeleteConfirm = "Are you sure you want to delete this bot? This action cannot be undone."

const timeLayout = "Jan 2, 2006 15:04"

// BotListPage renders the bot list page.
func BotListPage(bots []botapi.Bot, flash *Flash) templ.Component {
	return Layout("Chatbots", flash, BotList(bots))
}

// BotList renders the bot table.
func BotList(bots []botapi.Bot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<section id="bot-list"><div class="toolbar"><h1>Chatbots</h1>`)
		h.raw(`<a class="button" href="/bots/new">New chatbot</a></div>`)
		if len(bots) == 0 {
			h.raw(`<p class="empty">No chatbots yet.</p></section>`)
			return h.err
		}
		h.raw(`<table><thead><tr><th>Name</th><th>Slug</th><th>Model</th><th>Adapter</th><th>Updated</th><th></th></tr></thead><tbody>`)
		for _, b := range bots {
			h.render(botRow(b))
		}
		h.raw(`</tbody></table></section>`)
		return h.err
	})
}

func botRow(b botapi.Bot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<tr`)
		h.attr("id", "bot-"+b.ID)
		h.raw(`><td>`)
		h.text(b.Name)
		h.raw(`</td><td><code>`)
		h.text(b.Slug)
		h.raw(`</code></td><td>`)
		h.text(b.Model)
		h.raw(`</td><td>`)
		h.text(b.Adapter)
		h.raw(`</td><td>`)
		if !b.UpdatedAt.IsZero() {
			h.text(b.UpdatedAt.Format(timeLayout))
		}
		h.raw(`</td><td class="actions"><a`)
		h.attr("href", "/bots/"+b.ID+"/edit")
		h.raw(`>Edit</a> <button type="button" class="danger"`)
		h.attr("hx-delete", "/bots/"+b.ID)
		h.attr("hx-confirm", DeleteConfirm)
		h.raw(`>Delete</button></td></tr>`)
		return h.err
	})
}

// BotFormData is everything the chatbot form needs.
type BotFormData struct {
	// BotID is empty when creating.
	BotID  string
	Form   *requests.BotRequest
	Errors validator.ValidationErrors
	// Banner holds the backend error detail of a failed submit.
	Banner string
}

func (d BotFormData) action() string {
	if d.BotID == "" {
		return "/bots"
	}
	return "/bots/" + d.BotID
}

func (d BotFormData) title() string {
	if d.BotID == "" {
		return "New chatbot"
	}
	return "Edit chatbot"
}

// BotFormPage renders the form inside the page shell.
func BotFormPage(d BotFormData) templ.Component {
	return Layout(d.title(), nil, BotForm(d))
}

// BotForm renders the chatbot form. The same URL serves htmx and plain
// submits; htmx uses PATCH for updates.
func BotForm(d BotFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		f := d.Form
		opts := f.Options()

		h.raw(`<form id="bot-form" method="post"`)
		h.attr("action", d.action())
		if d.BotID == "" {
			h.attr("hx-post", d.action())
		} else {
			h.attr("hx-patch", d.action())
		}
		h.raw(` hx-target="this" hx-swap="outerHTML"><h1>`)
		h.text(d.title())
		h.raw(`</h1>`)

		if d.Banner != "" {
			h.raw(`<div class="alert alert-error" role="alert">Error: `)
			h.text(d.Banner)
			h.raw(`</div>`)
		}

		h.raw(`<label for="name">Name</label><input id="name" name="name" type="text" required`)
		h.attr("value", f.Name)
		if opts.SlugEnabled {
			h.raw(` hx-post="/bots/slug/name" hx-trigger="input" hx-target="#slug-field" hx-swap="outerHTML"`)
			h.raw(` hx-include="#name, #slug, #user_edited" hx-sync="#bot-form:queue all"`)
		}
		h.raw(`>`)
		h.fieldError(d.Errors, "name")

		if opts.SlugEnabled {
			h.render(SlugSection(f.SlugState(), d.Errors))
		}

		h.raw(`<label for="system_prompt">System prompt</label><textarea id="system_prompt" name="system_prompt" rows="6" required>`)
		h.text(f.SystemPrompt)
		h.raw(`</textarea>`)
		h.fieldError(d.Errors, "system_prompt")

		h.render(selectField("model", "Model", f.Model, opts.Models))
		h.fieldError(d.Errors, "model")
		h.render(selectField("adapter", "Adapter", f.Adapter, opts.Adapters))
		h.fieldError(d.Errors, "adapter")

		if opts.SlugEnabled {
			h.render(dataSourceField(f.DataSources, opts.DataSources))
			h.fieldError(d.Errors, "data_source")
		}

		h.raw(`<button type="submit">Save</button> <a href="/">Cancel</a></form>`)
		return h.err
	})
}

func selectField(name, label, selected string, options []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<label for="`, name, `">`)
		h.text(label)
		h.raw(`</label><select id="`, name, `" name="`, name, `" required><option value="">Select one</option>`)
		for _, o := range options {
			h.raw(`<option`)
			h.attr("value", o)
			h.flag("selected", o == selected)
			h.raw(`>`)
			h.text(o)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		return h.err
	})
}

// dataSourceField renders a multi-select of the configured sources, or a
// free-text input when none are configured.
func dataSourceField(selected, options []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<label for="data_source">Data sources</label>`)
		if len(options) == 0 {
			h.raw(`<input id="data_source" name="data_source" type="text" placeholder="comma separated"`)
			h.attr("value", botapi.JoinDataSources(selected))
			h.raw(`>`)
			return h.err
		}
		h.raw(`<select id="data_source" name="data_source" multiple>`)
		for _, o := range options {
			h.raw(`<option`)
			h.attr("value", o)
			h.flag("selected", slices.Contains(selected, o))
			h.raw(`>`)
			h.text(o)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		return h.err
	})
}
