// Package htmx provides helpers for htmx requests and responses.
//
// The panel's forms are plain HTML enhanced with hx-* attributes, so every
// handler must answer both kinds of requests:
//
//	if htmx.IsHTMX(r) {
//		// swap a fragment
//	}
//
// Redirect sends HX-Redirect to htmx clients and a regular 3xx to everyone
// else:
//
//	htmx.Redirect(w, r, "/")
//
// Render options set response headers that change what the client swaps:
//
//	cfg := htmx.NewConfig(
//		htmx.WithRetarget("#bot-form"),
//		htmx.WithReswap(htmx.SwapOuterHTML),
//		htmx.WithOOB(flashBanner),
//	)
//	cfg.ApplyHeaders(w)
package htmx
