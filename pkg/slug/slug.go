package slug

import (
	"regexp"
	"strings"
)

var (
	// nonWord matches anything outside [A-Za-z0-9_-]. Go's \w is ASCII-only.
	nonWord      = regexp.MustCompile(`[^\w-]+`)
	repeatedDash = regexp.MustCompile(`-{2,}`)
)

// Make converts text to a URL-safe slug.
//
// The steps run in a fixed order: lowercase, trim surrounding whitespace,
// replace each whitespace run with a single hyphen, drop every character that
// is not a word character or hyphen, and collapse repeated hyphens.
// Leading or trailing hyphens produced by the input are kept.
//
// Make is pure and idempotent: Make(Make(s)) == Make(s).
func Make(text string) string {
	s := strings.ToLower(text)
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), "-")
	s = nonWord.ReplaceAllString(s, "")
	return repeatedDash.ReplaceAllString(s, "-")
}

