package requests

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/validator"
)

// reservedAccessFields never travel as passthrough fields.
var reservedAccessFields = []string{"access_level", "user_id", "_method"}

// UserAccessRequest is the user access level form.
type UserAccessRequest struct {
	AccessLevel string            `form:"access_level"`
	Fields      map[string]string `form:"-"`

	level    int
	maxLevel int
}

// NewUserAccessRequest returns a form accepting levels in [0, maxLevel].
func NewUserAccessRequest(maxLevel int) *UserAccessRequest {
	return &UserAccessRequest{maxLevel: maxLevel}
}

// MaxLevel returns the highest accepted access level.
func (r *UserAccessRequest) MaxLevel() int {
	return r.maxLevel
}

// CollectFields keeps every other single-valued form field for passthrough.
func (r *UserAccessRequest) CollectFields(form url.Values) {
	r.Fields = make(map[string]string, len(form))
	for k, vals := range form {
		if len(vals) == 0 || slices.Contains(reservedAccessFields, k) {
			continue
		}
		r.Fields[k] = vals[0]
	}
}

func (r *UserAccessRequest) Sanitize() {
	r.AccessLevel = strings.TrimSpace(r.AccessLevel)
}

// Validate parses access_level; a non-integer is a field error.
func (r *UserAccessRequest) Validate() error {
	if r.AccessLevel == "" {
		return validator.Apply(validator.RequiredString("access_level", r.AccessLevel))
	}
	level, err := strconv.Atoi(r.AccessLevel)
	if err != nil {
		var errs validator.ValidationErrors
		errs.Add("access_level", "must be a whole number")
		return errs
	}
	r.level = level
	return validator.Apply(validator.RangeInt("access_level", level, 0, r.maxLevel))
}

// Level returns the parsed level. Valid only after Validate succeeded.
func (r *UserAccessRequest) Level() int {
	return r.level
}

// Input converts the form into the backend payload.
func (r *UserAccessRequest) Input() botapi.UserAccessInput {
	return botapi.UserAccessInput{
		AccessLevel: r.level,
		Fields:      r.Fields,
	}
}
