package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", internal.ErrNotFound("bot not found"), true},
		{"wrapped", fmt.Errorf("load bot: %w", internal.ErrBadRequest("bad id")), true},
		{"double wrapped", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", internal.ErrConflict("slug taken"))), true},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, internal.IsHTTPError(tt.err))
		})
	}
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("wrapped preserves fields", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("backend down")
		httpErr := internal.ErrServiceUnavailable("Backend unavailable",
			internal.WithTitle("Unavailable"),
			internal.WithDetail("try again later"),
			internal.WithErrorCode("BACKEND"),
			internal.WithRequestID("req-1"),
			internal.WithError(cause),
		)

		got := internal.AsHTTPError(fmt.Errorf("list bots: %w", httpErr))
		require.NotNil(t, got)
		require.Equal(t, http.StatusServiceUnavailable, got.StatusCode())
		require.Equal(t, "Service Unavailable", got.StatusText())
		require.Equal(t, "Backend unavailable", got.Error())
		require.Equal(t, "Unavailable", got.Title)
		require.Equal(t, "try again later", got.Detail)
		require.Equal(t, "BACKEND", got.ErrorCode)
		require.Equal(t, "req-1", got.RequestID)
		require.ErrorIs(t, got, cause)
	})

	t.Run("unrelated returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("plain")))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *internal.HTTPError
		code int
	}{
		{internal.ErrBadRequest("x"), http.StatusBadRequest},
		{internal.ErrUnauthorized("x"), http.StatusUnauthorized},
		{internal.ErrForbidden("x"), http.StatusForbidden},
		{internal.ErrNotFound("x"), http.StatusNotFound},
		{internal.ErrConflict("x"), http.StatusConflict},
		{internal.ErrUnprocessable("x"), http.StatusUnprocessableEntity},
		{internal.ErrInternal("x"), http.StatusInternalServerError},
		{internal.ErrBadGateway("x"), http.StatusBadGateway},
		{internal.ErrServiceUnavailable("x"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		require.Equal(t, tt.code, tt.err.Code)
	}
}
