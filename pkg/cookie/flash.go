package cookie

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashPrefix = "flash_"

// SetFlash stores value as a session cookie read once by Flash.
func (m *Manager) SetFlash(w http.ResponseWriter, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	name := flashPrefix + key
	if m.secret != nil {
		return m.SetEncrypted(w, name, string(data), 0)
	}
	m.Set(w, name, base64.RawURLEncoding.EncodeToString(data), 0)
	return nil
}

// Flash decodes the flash message into dest and deletes the cookie.
// Returns ErrNotFound if there is no flash for key.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	name := flashPrefix + key

	var raw []byte
	if m.secret != nil {
		s, err := m.GetEncrypted(r, name)
		if err != nil {
			return err
		}
		raw = []byte(s)
	} else {
		s, err := m.Get(r, name)
		if err != nil {
			return err
		}
		if raw, err = base64.RawURLEncoding.DecodeString(s); err != nil {
			m.Delete(w, name)
			return ErrDecode
		}
	}

	m.Delete(w, name)

	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrDecode
	}
	return nil
}
