package internal

import "strconv"

// Scalar lists the types typed accessors can parse into.
type Scalar interface {
	~string | ~int | ~int64 | ~float64 | ~bool
}

// ContextValue returns the value stored under key, or T's zero value.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param returns the URL parameter parsed as T, or the zero value.
func Param[T Scalar](c Context, name string) T {
	v, _ := parseAs[T](c.Param(name))
	return v
}

// QueryDefault returns the query parameter parsed as T.
// Returns def when the parameter is empty or does not parse.
//
// Example:
//
//	limit := botpanel.QueryDefault(c, "limit", 100)
func QueryDefault[T Scalar](c Context, name string, def T) T {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, ok := parseAs[T](raw)
	if !ok {
		return def
	}
	return v
}

func parseAs[T Scalar](raw string) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return out, false
		}
		*p = v
	case *int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return out, false
		}
		*p = v
	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, false
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return out, false
		}
		*p = v
	default:
		return out, false
	}
	return out, true
}
