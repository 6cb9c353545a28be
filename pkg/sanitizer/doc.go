// Package sanitizer strips markup from free-text form input.
//
// Chatbot names and system prompts are plain text. Anything that looks like
// HTML is removed with a bluemonday strict policy, entities are decoded back
// to the characters the user typed, and surrounding whitespace is trimmed:
//
//	name := sanitizer.PlainText(`<b>Support</b> &amp; Sales `) // "Support & Sales"
//
// Use Strings to clean several fields of a request struct in place:
//
//	sanitizer.Strings(&req.Name, &req.SystemPrompt)
//
// Output is not HTML-safe. Views escape it when rendering.
package sanitizer
