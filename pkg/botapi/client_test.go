package botapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/pkg/botapi"
)

const (
	botID  = "6f1c2a9e-3b4d-4e5f-8a7b-1c2d3e4f5a6b"
	userID = "0b9d7c1e-2f3a-4b5c-9d8e-7f6a5b4c3d2e"
)

type recorded struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	Body        []byte
}

// backend is a fake chatbot backend that records every request.
type backend struct {
	mu       sync.Mutex
	requests []recorded
	handler  http.HandlerFunc
}

func newBackend(t *testing.T, h http.HandlerFunc) (*backend, *botapi.Client) {
	t.Helper()
	b := &backend{handler: h}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.requests = append(b.requests, recorded{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		b.mu.Unlock()
		b.handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := botapi.New(srv.URL, botapi.WithTimeout(2*time.Second))
	require.NoError(t, err)
	return b, client
}

func (b *backend) last(t *testing.T) recorded {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.requests)
	return b.requests[len(b.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "http", url: "http://localhost:8000"},
		{name: "trailing slash", url: "http://localhost:8000/"},
		{name: "with prefix", url: "https://api.example.com/backend"},
		{name: "empty", url: "", wantErr: true},
		{name: "no scheme", url: "localhost:8000", wantErr: true},
		{name: "relative", url: "/api", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := botapi.New(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, botapi.ErrBaseURL)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	t.Run("reachable", func(t *testing.T) {
		t.Parallel()
		b, client := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "You are not authenticated"})
		})
		require.NoError(t, client.Ping(context.Background()))
		assert.Equal(t, "/api/bots", b.last(t).Path)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		_, client := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		var apiErr *botapi.APIError
		require.ErrorAs(t, client.Ping(context.Background()), &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client, err := botapi.New(srv.URL)
		require.NoError(t, err)
		assert.ErrorIs(t, client.Ping(context.Background()), botapi.ErrUnavailable)
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	t.Cleanup(func() {
		close(done)
		srv.Close()
	})

	client, err := botapi.New(srv.URL, botapi.WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	err = client.CreateBot(context.Background(), botapi.BotInput{Name: "Slow"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, botapi.ErrUnavailable))
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	withDetail := &botapi.APIError{StatusCode: http.StatusNotFound, Detail: "Bot not found"}
	assert.Equal(t, "Bot not found", withDetail.Message())
	assert.Equal(t, "botapi: 404: Bot not found", withDetail.Error())
	assert.True(t, botapi.IsNotFound(withDetail))

	bare := &botapi.APIError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "Bad Gateway", bare.Message())
	assert.False(t, botapi.IsNotFound(bare))

	assert.Equal(t, "Bot not found", botapi.DetailOf(withDetail, "fallback"))
	assert.Equal(t, "fallback", botapi.DetailOf(errors.New("dial tcp"), "fallback"))
}
