// Package preferences keeps a visitor's theme, locale and navigation
// choices in a signed cookie.
package preferences
