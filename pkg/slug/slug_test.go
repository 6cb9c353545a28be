package slug_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"

	"github.com/sapujagad-id/botpanel/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "collapses whitespace and drops punctuation", input: "Hello   World!!", expected: "hello-world"},
		{name: "collapses repeated hyphens", input: "  Already--slug--ish  ", expected: "already-slug-ish"},
		{name: "empty string", input: "", expected: ""},
		{name: "whitespace only", input: " \t\n ", expected: ""},
		{name: "simple text", input: "Support Bot", expected: "support-bot"},
		{name: "keeps digits", input: "Bot 2024", expected: "bot-2024"},
		{name: "keeps underscores", input: "snake_case name", expected: "snake_case-name"},
		{name: "tabs and newlines", input: "Line1\nLine2\tTabbed", expected: "line1-line2-tabbed"},
		{name: "only special characters", input: "!@#$%^&*()", expected: ""},
		{name: "removes non ascii letters", input: "Café Bot", expected: "caf-bot"},
		{name: "emoji removed", input: "Hello 😀 World", expected: "hello-world"},
		{name: "hyphen runs across removed chars", input: "a - b", expected: "a-b"},
		{name: "punctuation between hyphens", input: "a-!-b", expected: "a-b"},
		{name: "keeps leading hyphen", input: "-lead", expected: "-lead"},
		{name: "keeps trailing hyphen", input: "trail!-", expected: "trail-"},
		{name: "non breaking space is whitespace", input: "a\u00a0b", expected: "a-b"},
		{name: "already a slug", input: "customer-support", expected: "customer-support"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input))
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	t.Parallel()

	f := func(s string) bool {
		return slug.Make(s) == slug.Make(s)
	}
	assert.NoError(t, quick.Check(f, nil))
}

func TestMake_Idempotent(t *testing.T) {
	t.Parallel()

	f := func(s string) bool {
		once := slug.Make(s)
		return slug.Make(once) == once
	}
	assert.NoError(t, quick.Check(f, &quick.Config{MaxCount: 2000}))

	for _, s := range []string{"Hello   World!!", "  Already--slug--ish  ", "", "--", "-a-", "İstanbul", "KELVIN \u212a"} {
		once := slug.Make(s)
		assert.Equal(t, once, slug.Make(once), "input %q", s)
	}
}
