package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorPage renders a full error page.
func ErrorPage(code int, title, message, requestID string) templ.Component {
	return Layout(title, nil, ErrorContent(code, title, message, requestID))
}

// ErrorContent renders the error body without the page shell.
func ErrorContent(code int, title, message, requestID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<section class="error-page"><h1>`, itoa(code), ` `)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(message)
		h.raw(`</p>`)
		if requestID != "" {
			h.raw(`<p class="request-id">Request ID: <code>`)
			h.text(requestID)
			h.raw(`</code></p>`)
		}
		h.raw(`<a href="/">Back to chatbots</a></section>`)
		return h.err
	})
}
