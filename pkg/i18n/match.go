package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength caps the header we are willing to parse.
const maxAcceptLanguageLength = 4096

// Match picks the best supported language for an Accept-Language header.
// Empty, oversized, malformed or unmatched headers yield the default language.
//
//	Accept-Language: pt-PT,pt;q=0.9,en;q=0.8  -> "pt-PT"
//	Accept-Language: ja-JP                    -> "ja"
func (i *I18n) Match(acceptLanguage string) string {
	if acceptLanguage == "" || len(acceptLanguage) > maxAcceptLanguageLength {
		return i.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return i.defaultLang
	}

	_, idx, conf := i.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(i.languages) {
		return i.defaultLang
	}
	return i.languages[idx]
}
