package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-viper/mapstructure/v2"

	"github.com/sapujagad-id/botpanel/pkg/validator"
)

// Sanitizer is implemented by request structs that normalize their fields
// after binding.
type Sanitizer interface {
	Sanitize()
}

// Validator is implemented by request structs that check their fields after
// sanitizing. Field errors must be returned as ValidationErrors.
type Validator interface {
	Validate() error
}

// ErrEmptyBody is returned by BindJSON when the request has no body.
var ErrEmptyBody = errors.New("empty request body")

const formTag = "form"

// bindForm decodes r's form into v through "form" struct tags.
// A key with one value decodes as a string, several as a slice.
func bindForm(r *http.Request, v any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	input := make(map[string]any, len(r.Form))
	for k, vals := range r.Form {
		if len(vals) == 1 {
			input[k] = vals[0]
			continue
		}
		input[k] = vals
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          formTag,
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func bindJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	return json.NewDecoder(r.Body).Decode(v)
}

// bindAndValidate binds request data, then sanitizes and validates v.
// Field errors are returned separately from system errors.
func bindAndValidate(r *http.Request, bind func(*http.Request, any) error, v any, label string) (ValidationErrors, error) {
	if err := bind(r, v); err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	if s, ok := v.(Sanitizer); ok {
		s.Sanitize()
	}
	val, ok := v.(Validator)
	if !ok {
		return nil, nil
	}
	if err := val.Validate(); err != nil {
		if validator.IsValidationError(err) {
			return validator.ExtractValidationErrors(err), nil
		}
		return nil, fmt.Errorf("validate: %w", err)
	}
	return nil, nil
}
