// Package handlers wires form requests to the chatbot backend and renders
// the results.
//
// Handlers never retry a backend call. A failed submit re-renders the form
// with the backend detail, so the user can correct it and try again.
package handlers
