package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// CosmeticForbiddenChars are rejected in free-text chatbot fields.
// See the package documentation: this is a UX rule only.
const CosmeticForbiddenChars = `'";-`

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs all rules and returns ValidationErrors if any failed.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}
		errs = append(errs, r.Error)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// When returns the rules only if cond is true.
func When(cond bool, rules ...Rule) Rule {
	return Rule{
		Check: func() bool {
			if !cond {
				return true
			}
			return Apply(rules...) == nil
		},
		Error: firstError(rules),
	}
}

func firstError(rules []Rule) ValidationError {
	for _, r := range rules {
		if r.Check != nil && !r.Check() {
			return r.Error
		}
	}
	return ValidationError{}
}

// RequiredString fails on an empty value.
// Whitespace is significant; trim before validating if that matters.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// MaxLenString fails when value has more than limit runes.
func MaxLenString(field, value string, limit int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= limit },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", limit)},
	}
}

// NoForbiddenChars fails when value contains any rune from chars.
func NoForbiddenChars(field, value, chars string) Rule {
	return Rule{
		Check: func() bool { return !strings.ContainsAny(value, chars) },
		Error: ValidationError{Field: field, Message: "must not contain any of " + spaced(chars)},
	}
}

// OneOf fails when value is not in allowed. Empty values pass; pair with
// RequiredString when the field is mandatory.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool { return value == "" || slices.Contains(allowed, value) },
		Error: ValidationError{Field: field, Message: "must be one of " + strings.Join(allowed, ", ")},
	}
}

// AllOf fails when any of values is not in allowed.
func AllOf(field string, values []string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !slices.Contains(allowed, v) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must only contain " + strings.Join(allowed, ", ")},
	}
}

// RangeInt fails when value is outside [lo, hi].
func RangeInt(field string, value, lo, hi int) Rule {
	return Rule{
		Check: func() bool { return value >= lo && value <= hi },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", lo, hi)},
	}
}

func spaced(chars string) string {
	parts := make([]string, 0, len(chars))
	for _, r := range chars {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}
