package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapujagad-id/botpanel/pkg/cookie"
)

const testSecret = "this-is-a-32-byte-secret-key!!!!"

type flash struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func TestPlainCookies(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "theme")
		assert.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		m.Set(w, "theme", "dark", 3600)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
		assert.Equal(t, "/", cookies[0].Path)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookies[0])
		v, err := m.Get(r, "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", v)
	})
}

func TestEncryptedCookies(t *testing.T) {
	t.Parallel()

	t.Run("no secret", func(t *testing.T) {
		t.Parallel()
		m := cookie.New(cookie.WithSecret("too-short"))
		assert.False(t, m.HasSecret())
		assert.ErrorIs(t, m.SetEncrypted(httptest.NewRecorder(), "x", "y", 0), cookie.ErrNoSecret)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		m := cookie.New(cookie.WithSecret(testSecret))
		w := httptest.NewRecorder()
		require.NoError(t, m.SetEncrypted(w, "prefs", "compact", 0))

		c := w.Result().Cookies()[0]
		assert.NotContains(t, c.Value, "compact")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(c)
		v, err := m.GetEncrypted(r, "prefs")
		require.NoError(t, err)
		assert.Equal(t, "compact", v)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()
		m := cookie.New(cookie.WithSecret(testSecret))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "prefs", Value: "bm90LWVuY3J5cHRlZA"})

		_, err := m.GetEncrypted(r, "prefs")
		assert.ErrorIs(t, err, cookie.ErrDecrypt)
	})
}

func TestFlash(t *testing.T) {
	t.Parallel()

	managers := map[string]*cookie.Manager{
		"encrypted": cookie.New(cookie.WithSecret(testSecret)),
		"plain":     cookie.New(),
	}

	for name, m := range managers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			require.NoError(t, m.SetFlash(w, "bots", flash{Kind: "success", Text: "Chatbot deleted successfully!"}))

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "flash_bots", cookies[0].Name)

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(cookies[0])
			w2 := httptest.NewRecorder()

			var got flash
			require.NoError(t, m.Flash(w2, r, "bots", &got))
			assert.Equal(t, flash{Kind: "success", Text: "Chatbot deleted successfully!"}, got)

			deleted := w2.Result().Cookies()
			require.Len(t, deleted, 1)
			assert.Equal(t, -1, deleted[0].MaxAge)
		})
	}

	t.Run("missing flash", func(t *testing.T) {
		t.Parallel()
		var got flash
		err := cookie.New().Flash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "bots", &got)
		assert.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("malformed plain flash", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "flash_bots", Value: "%%%"})

		var got flash
		err := cookie.New().Flash(httptest.NewRecorder(), r, "bots", &got)
		assert.ErrorIs(t, err, cookie.ErrDecode)
	})
}

func TestCookieAttributes(t *testing.T) {
	t.Parallel()

	m := cookie.New(
		cookie.WithDomain("panel.example.com"),
		cookie.WithPath("/admin"),
		cookie.WithSecure(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)
	w := httptest.NewRecorder()
	m.Set(w, "k", "v", 60)

	c := w.Result().Cookies()[0]
	assert.Equal(t, "panel.example.com", c.Domain)
	assert.Equal(t, "/admin", c.Path)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, 60, c.MaxAge)
}
