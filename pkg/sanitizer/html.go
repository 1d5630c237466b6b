package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Email layouts use tables, inline styles and button links.
		emailPolicy = bluemonday.UGCPolicy()
		emailPolicy.AllowElements("html", "head", "body", "title", "meta", "center", "span", "div", "hr")
		emailPolicy.AllowAttrs("style", "class", "align", "width", "bgcolor").Globally()
		emailPolicy.AllowAttrs("cellpadding", "cellspacing", "border", "role").OnElements("table")
		emailPolicy.AllowAttrs("charset", "name", "content").OnElements("meta")
		emailPolicy.AllowAttrs("target").OnElements("a")
		emailPolicy.AllowURLSchemes("mailto", "https", "http")
		emailPolicy.AllowUnsafe(false)
		emailPolicy.AllowStyling()
		emailPolicy.RequireNoFollowOnLinks(false)
	})
}

// EmailHTML sanitizes a rendered email body. Layout markup survives,
// while scripts, event handlers and javascript: URLs are removed.
func EmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// StripHTML removes all markup and returns readable text with entities decoded.
func StripHTML(s string) string {
	initPolicies()
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
