// Package htmx holds the small set of htmx request/response helpers the site
// uses: detecting htmx requests, client-side redirects and event triggers.
//
//	if htmx.IsHTMX(r) && !htmx.IsBoosted(r) {
//		htmx.Trigger(w, "contact:sent")
//		// render the partial only
//	}
package htmx
