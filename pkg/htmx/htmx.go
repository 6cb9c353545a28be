package htmx

import "net/http"

// IsHTMX returns true if the request originated from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted returns true for hx-boost navigations, which expect a full page.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// Target returns the id of the element htmx will swap into.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}

// TriggerName returns the name attribute of the element that fired the request.
func TriggerName(r *http.Request) string {
	return r.Header.Get(HeaderHXTriggerName)
}

// CurrentURL returns the browser URL at the time of the request.
func CurrentURL(r *http.Request) string {
	return r.Header.Get(HeaderHXCurrentURL)
}
