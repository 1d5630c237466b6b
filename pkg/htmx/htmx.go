package htmx

import (
	"net/http"
	"strings"
)

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted reports whether the request came from an hx-boost link or form.
// Boosted requests expect a full page, not a partial.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// Target returns the id of the element the response will be swapped into.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}

// Trigger asks htmx to fire client-side events after the response arrives.
// Existing triggers on the response are kept.
func Trigger(w http.ResponseWriter, events ...string) {
	if len(events) == 0 {
		return
	}
	h := w.Header()
	if existing := h.Get(HeaderHXTrigger); existing != "" {
		events = append([]string{existing}, events...)
	}
	h.Set(HeaderHXTrigger, strings.Join(events, ", "))
}
