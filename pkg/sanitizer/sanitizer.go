package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes all HTML elements, keeping their text content.
// The content of script and style elements is dropped entirely.
// The result is HTML-escaped.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// PlainText strips markup, decodes entities and trims surrounding whitespace.
func PlainText(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(StripHTML(s)))
}

// Strings replaces each non-nil pointer's value with its PlainText form.
func Strings(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = PlainText(*f)
		}
	}
}
