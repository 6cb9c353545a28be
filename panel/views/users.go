package views

import (
	"context"
	"io"
	"maps"
	"slices"

	"github.com/a-h/templ"

	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/pkg/validator"
)

// AccessFormData is everything the user access form needs.
type AccessFormData struct {
	UserID string
	Form   *requests.UserAccessRequest
	Errors validator.ValidationErrors
	// Result is the backend outcome of the last submit, if any.
	Result *Flash
}

// UserAccessPage renders the access form inside the page shell.
func UserAccessPage(d AccessFormData) templ.Component {
	return Layout("User access", nil, UserAccessForm(d))
}

// UserAccessForm renders the access level form.
func UserAccessForm(d AccessFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		action := "/users/" + d.UserID + "/access"

		h.raw(`<form id="access-form" method="post"`)
		h.attr("action", action)
		h.attr("hx-patch", action)
		h.raw(` hx-target="this" hx-swap="outerHTML"><h1>User access</h1>`)
		if d.Result != nil {
			h.render(Alert(*d.Result))
		}
		h.raw(`<p>User <code>`)
		h.text(d.UserID)
		h.raw(`</code></p>`)

		h.raw(`<label for="access_level">Access level</label><select id="access_level" name="access_level" required>`)
		h.raw(`<option value="">Select one</option>`)
		for lvl := 0; lvl <= d.Form.MaxLevel(); lvl++ {
			v := itoa(lvl)
			h.raw(`<option`)
			h.attr("value", v)
			h.flag("selected", v == d.Form.AccessLevel)
			h.raw(`>`, v, `</option>`)
		}
		h.raw(`</select>`)
		h.fieldError(d.Errors, "access_level")

		for _, k := range slices.Sorted(maps.Keys(d.Form.Fields)) {
			h.raw(`<input type="hidden"`)
			h.attr("name", k)
			h.attr("value", d.Form.Fields[k])
			h.raw(`>`)
		}

		h.raw(`<button type="submit">Update access</button></form>`)
		return h.err
	})
}
