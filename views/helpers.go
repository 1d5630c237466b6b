package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

// count groups thousands the way the page locale does:
// "12,345" (en), "12.345" (pt-BR), "12 345" (pt-PT).
func count(p Page, n int) string {
	return p.format().FormatNumber(n)
}

// updated shows "3 days ago" on English pages. humanize only speaks English,
// so other languages get the locale's date layout.
func updated(p Page, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if p.Lang == "" || strings.HasPrefix(p.Lang, "en") {
		return humanize.Time(t)
	}
	return p.format().FormatDate(t)
}

// size formats a repository size, reported by GitHub in KiB.
func size(kib int) string {
	return humanize.IBytes(uint64(kib) * 1024)
}
