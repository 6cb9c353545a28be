package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live?format=json", nil))

		var resp health.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, health.StatusHealthy, resp.Status)
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{
			"backend": func(context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("failing check returns 503 with details", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{
			"backend": func(context.Context) error { return errors.New("connection refused") },
			"other":   func(context.Context) error { return nil },
		})

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["backend"].Error)
		assert.Equal(t, health.StatusHealthy, resp.Checks["other"].Status)
	})

	t.Run("plain text lists failed checks", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{
			"backend": func(context.Context) error { return errors.New("connection refused") },
			"other":   func(context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable\nbackend: connection refused", rec.Body.String())
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{
			"backend": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(10*time.Millisecond))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))

		var resp health.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, health.ErrCheckTimeout.Error(), resp.Checks["backend"].Error)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	resp, err := health.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, health.StatusHealthy, resp.Status)

	_, err = health.Run(context.Background(), health.Checks{
		"backend": func(context.Context) error { return errors.New("down") },
	})
	assert.ErrorIs(t, err, health.ErrCheckFailed)
}
