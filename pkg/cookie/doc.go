// Package cookie manages HTTP cookies and one-shot flash messages.
//
// The panel uses flash cookies to carry the outcome of a create, update or
// delete across the redirect back to the bot list:
//
//	m := cookie.New(
//		cookie.WithSecret(os.Getenv("COOKIE_SECRET")),
//		cookie.WithSecure(true),
//	)
//	_ = m.SetFlash(w, "bots", Flash{Kind: "success", Text: "Chatbot deleted successfully!"})
//
//	// next request
//	var f Flash
//	if err := m.Flash(w, r, "bots", &f); err == nil {
//		// render f, the cookie is already deleted
//	}
//
// With a secret of 32 or more bytes flash values are encrypted with
// AES-256-GCM. Without one they are stored as base64 JSON; flash text is
// shown to the same browser that caused it and carries nothing private.
//
// Errors:
//   - [ErrNotFound]: cookie does not exist
//   - [ErrNoSecret]: encrypted operation without a secret
//   - [ErrDecrypt]: tampered or corrupt encrypted value
//   - [ErrDecode]: unreadable plain flash value
package cookie
