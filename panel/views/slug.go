package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/slugsync"
	"github.com/sapujagad-id/botpanel/pkg/validator"
)

// Slug check messages.
const (
	SlugEmptyMessage     = "Slug cannot be empty."
	SlugTakenMessage     = "Slug already exists. Please choose another."
	SlugAvailableMessage = "Slug is unique!"
	SlugErrorMessage     = "Error checking slug. Please try again."
)

// SlugSection renders the slug field followed by the uniqueness check.
// The check sits outside #slug-field so field round-trips never replace it.
func SlugSection(s slugsync.State, errs validator.ValidationErrors) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.render(SlugField(s, errs))
		h.raw(`<button type="button" hx-get="/bots/slug/check" hx-include="#slug" hx-target="#slug-check" hx-swap="outerHTML"`)
		h.raw(` hx-sync="#bot-form:queue all">Check availability</button>`)
		h.render(SlugCheckPending())
		return h.err
	})
}

// SlugField renders the slug input with its synchronizer wiring.
// Name changes and blurs replace the whole field; slug edits only replace
// the hidden flag so the text being typed is never overwritten.
func SlugField(s slugsync.State, errs validator.ValidationErrors) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<div id="slug-field"`)
		h.attr("data-mode", string(s.Mode()))
		h.raw(`><label for="slug">Slug</label>`)
		h.raw(`<input id="slug" name="slug" type="text" required`)
		h.attr("value", s.Slug)
		h.raw(` hx-post="/bots/slug/blur" hx-trigger="blur" hx-target="#slug-field" hx-swap="outerHTML"`)
		h.raw(` hx-include="#name, #slug, #user_edited" hx-sync="#bot-form:queue all">`)
		h.render(UserEditedInput(s.UserEdited))
		h.fieldError(errs, "slug")
		h.raw(`</div>`)
		return h.err
	})
}

// UserEditedInput renders the hidden manual-override flag. Any input in the
// slug field posts to /bots/slug/edit and swaps this element. The edit
// aborts pending name and blur requests so their stale slug is never swapped
// over what is being typed.
func UserEditedInput(userEdited bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		v := "false"
		if userEdited {
			v = "true"
		}
		h.raw(`<input id="user_edited" name="user_edited" type="hidden"`)
		h.attr("value", v)
		h.raw(` hx-post="/bots/slug/edit" hx-trigger="input from:#slug" hx-target="this" hx-swap="outerHTML"`)
		h.raw(` hx-include="#name, #slug, #user_edited" hx-sync="#bot-form:replace">`)
		return h.err
	})
}

// SlugCheckPending renders the empty result line.
func SlugCheckPending() templ.Component {
	return slugCheckLine("", "")
}

// SlugCheckEmpty is shown for a blank slug.
func SlugCheckEmpty() templ.Component {
	return slugCheckLine("error", SlugEmptyMessage)
}

// SlugCheckFailed is shown when the backend could not answer.
func SlugCheckFailed() templ.Component {
	return slugCheckLine("error", SlugErrorMessage)
}

// SlugCheckResult renders the outcome of a completed check.
func SlugCheckResult(status botapi.SlugStatus) templ.Component {
	if status == botapi.SlugTaken {
		return slugCheckLine("error", SlugTakenMessage)
	}
	return slugCheckLine("success", SlugAvailableMessage)
}

func slugCheckLine(kind, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<p id="slug-check" aria-live="polite"`)
		if kind != "" {
			h.attr("class", "text-"+kind)
		}
		h.raw(`>`)
		h.text(msg)
		h.raw(`</p>`)
		return h.err
	})
}
