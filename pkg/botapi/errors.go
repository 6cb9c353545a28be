package botapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrBaseURL     = errors.New("botapi: invalid base url")
	ErrInvalidID   = errors.New("botapi: invalid id")
	ErrDecode      = errors.New("botapi: malformed response")
	ErrUnavailable = errors.New("botapi: backend unavailable")
)

// APIError is a non-success response from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("botapi: %d: %s", e.StatusCode, e.Message())
}

// Message returns the backend detail, or the status text when there is none.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.StatusCode)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// DetailOf returns the user-facing message of an APIError, or fallback for
// any other error.
func DetailOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return fallback
}

// errorBody matches {"detail": "..."} and the request validation shape
// {"detail": [{"loc": [...], "msg": "..."}]}.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func parseDetail(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg == "" {
				continue
			}
			if n := len(it.Loc); n > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", it.Loc[n-1], it.Msg))
				continue
			}
			msgs = append(msgs, it.Msg)
		}
		return strings.Join(msgs, "; ")
	}

	return string(raw)
}
