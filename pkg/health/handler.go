package health

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// LivenessHandler answers 200 as long as the process serves HTTP.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		write(w, r, http.StatusOK, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks on every request and answers 503 when any
// of them fails.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := runChecks(r.Context(), checks, cfg)
		code := http.StatusOK
		if resp.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		write(w, r, code, resp)
	}
}

// write sends JSON when asked for (?format=json or an Accept header) and a
// short plain-text summary otherwise, one line per failed check.
func write(w http.ResponseWriter, r *http.Request, code int, resp *Response) {
	if r.URL.Query().Get("format") == "json" || strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if resp.Status == StatusHealthy {
		_, _ = fmt.Fprint(w, "OK")
		return
	}
	_, _ = fmt.Fprint(w, "Service Unavailable")
	for _, name := range slices.Sorted(maps.Keys(resp.Checks)) {
		if c := resp.Checks[name]; c.Status == StatusUnhealthy {
			_, _ = fmt.Fprintf(w, "\n%s: %s", name, c.Error)
		}
	}
}
