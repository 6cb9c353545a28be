package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashKey is the cookie key flash messages are stored under.
const FlashKey = "notice"

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown at the top of the next page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Success returns a success flash.
func Success(msg string) Flash {
	return Flash{Kind: FlashSuccess, Message: msg}
}

// Failure returns an error flash.
func Failure(msg string) Flash {
	return Flash{Kind: FlashError, Message: msg}
}

// Alert renders a single banner.
func Alert(f Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		if f.Message == "" {
			return nil
		}
		kind := f.Kind
		if kind != FlashSuccess {
			kind = FlashError
		}
		h.raw(`<div class="alert alert-`, kind, `" role="alert">`)
		h.text(f.Message)
		h.raw(`</div>`)
		return h.err
	})
}

// stylesheet colours the error and success states.
const stylesheet = `.text-error{color:#ef4444}.text-success{color:#22c55e}` +
	`.alert{padding:.75rem 1rem;border-radius:.375rem;margin-bottom:1rem}` +
	`.alert-error{background:#fee2e2;color:#b91c1c}.alert-success{background:#dcfce7;color:#15803d}` +
	`.field-error{color:#ef4444}`

// Layout wraps body in the page shell. flash may be nil.
func Layout(title string, flash *Flash, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` | Bot Panel</title>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		h.raw(`<style>`, stylesheet, `</style>`)
		h.raw(`</head><body hx-boost="true"><header><a href="/">Chatbots</a></header>`)
		h.raw(`<div id="alerts">`)
		if flash != nil {
			h.render(Alert(*flash))
		}
		h.raw(`</div><main id="main">`)
		h.render(body)
		h.raw(`</main></body></html>`)
		return h.err
	})
}
