// Package validator provides small composable validation rules.
//
// Rules are plain values built from the data being checked. Apply runs them
// in order and collects every failure into ValidationErrors:
//
//	err := validator.Apply(
//		validator.RequiredString("name", req.Name),
//		validator.NoForbiddenChars("name", req.Name, validator.CosmeticForbiddenChars),
//		validator.OneOf("model", req.Model, models...),
//	)
//	if validator.IsValidationError(err) {
//		errs := validator.ExtractValidationErrors(err)
//		// re-render the form with errs.Get("name") ...
//	}
//
// NoForbiddenChars exists to give early feedback on characters the backend is
// known to reject. It is not an injection defense: queries must still be
// parameterized on the server.
package validator
