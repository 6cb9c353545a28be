// Package requests holds the form structs bound by the panel handlers.
//
// Each struct is bound through Context.Bind, which fills the "form" tagged
// fields, then calls Sanitize and Validate. Options that shape validation,
// such as the allowed models, live in unexported fields set by the
// constructors, so Validate needs no arguments.
//
// Validation here is a convenience for the person filling the form. The
// backend remains the authority; the forbidden-character rule in particular
// is cosmetic and not an injection defense.
package requests
