// Package views renders the site's HTML. Components are templ.Component
// values, so handlers pass them straight to Context.Render and
// Context.RenderPartial.
//
// Every piece of user or upstream text goes through templ.EscapeString and
// every outbound link through templ.URL.
package views
