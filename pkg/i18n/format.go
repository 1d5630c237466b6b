package i18n

import (
	"strconv"
	"strings"
	"time"
)

// LocaleFormat holds the per-locale layouts used on the site:
// star/fork counts and the dates shown next to projects.
// Immutable after creation.
type LocaleFormat struct {
	thousandSeparator string
	dateFormat        string
}

// LocaleFormatOption configures a LocaleFormat.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat. Without options it formats US English.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		thousandSeparator: ",",
		dateFormat:        "Jan 2, 2006",
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) { lf.thousandSeparator = sep }
}

// WithDateFormat sets a Go time layout for dates.
func WithDateFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) { lf.dateFormat = layout }
}

// FormatForLanguage returns the predefined format for a supported locale,
// falling back to US English.
func FormatForLanguage(lang string) *LocaleFormat {
	switch lang {
	case "en-GB":
		return NewLocaleFormat(WithDateFormat("2 Jan 2006"))
	case "pt-BR":
		return NewLocaleFormat(
			WithThousandSeparator("."),
			WithDateFormat("02/01/2006"),
		)
	case "pt-PT", "pt":
		return NewLocaleFormat(
			WithThousandSeparator(" "),
			WithDateFormat("02/01/2006"),
		)
	case "ja":
		return NewLocaleFormat(WithDateFormat("2006/01/02"))
	default:
		return NewLocaleFormat()
	}
}

// FormatNumber groups thousands: 12345 -> "12,345" (en), "12.345" (pt-BR).
func (lf *LocaleFormat) FormatNumber(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteString(lf.thousandSeparator)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateFormat)
}
