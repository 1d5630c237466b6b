package geo

import "strings"

// Location is what an IP lookup resolves to.
type Location struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Timezone    string  `json:"timezone"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

// Theme is a cultural site theme.
type Theme string

const (
	ThemeDefault  Theme = "default"
	ThemeBrazil   Theme = "brazil"
	ThemePortugal Theme = "portugal"
	ThemeJapan    Theme = "japan"
	ThemeEngland  Theme = "england"
)

// Themes lists every theme, default first.
func Themes() []Theme {
	return []Theme{ThemeDefault, ThemeBrazil, ThemePortugal, ThemeJapan, ThemeEngland}
}

// ParseTheme returns the theme named s, case-insensitively.
func ParseTheme(s string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Themes() {
		if t == known {
			return t, true
		}
	}
	return ThemeDefault, false
}

// ThemeForCountry maps an ISO 3166-1 alpha-2 code to a theme. Both GB and
// the non-standard UK map to england.
func ThemeForCountry(code string) Theme {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "BR":
		return ThemeBrazil
	case "PT":
		return ThemePortugal
	case "JP":
		return ThemeJapan
	case "GB", "UK":
		return ThemeEngland
	default:
		return ThemeDefault
	}
}

// Theme returns the theme suggested for the location's country.
func (l Location) Theme() Theme {
	return ThemeForCountry(l.CountryCode)
}
