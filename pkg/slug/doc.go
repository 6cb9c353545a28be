// Package slug derives URL-safe identifiers from human-readable names.
//
// The transformation is deliberately small and predictable so that a slug
// shown in the admin form always matches what the name field would produce:
//
//	slug.Make("Hello   World!!")          // "hello-world"
//	slug.Make("  Already--slug--ish  ")   // "already-slug-ish"
//	slug.Make("Support Bot v2")           // "support-bot-v2"
//	slug.Make("snake_case stays")         // "snake_case-stays"
//
// Only ASCII letters, digits, underscores and hyphens survive. Characters
// outside that set, including accented letters, are removed rather than
// transliterated:
//
//	slug.Make("Café Bot") // "caf-bot"
package slug
