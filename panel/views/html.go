package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/sapujagad-id/botpanel/pkg/validator"
)

// htmlWriter remembers the first write error so components can write
// sequentially and check once.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s escaped.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// flag writes a boolean attribute when on.
func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// fieldError writes the error line for field, if any.
func (h *htmlWriter) fieldError(errs validator.ValidationErrors, field string) {
	msg := errs.Get(field)
	if msg == "" {
		return
	}
	h.raw(`<p class="field-error" id="`, field, `-error">`)
	h.text(msg)
	h.raw(`</p>`)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
