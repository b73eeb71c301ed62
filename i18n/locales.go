// Package i18n holds the site's locales and hardcoded copy
// dictionaries. Content is deliberately compiled in: the site has two
// languages and no CMS.
package i18n

import "golang.org/x/text/language"

// Locale is a supported site language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDA Locale = "da"
)

// DefaultLocale is used whenever a request carries no usable locale.
const DefaultLocale = LocaleEN

var localeTags = map[Locale]language.Tag{
	LocaleEN: language.English,
	LocaleDA: language.Danish,
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first tag wins ties and fallbacks
	language.Danish,
})

// IsLocale reports whether value names a supported locale.
func IsLocale(value string) bool {
	_, ok := localeTags[Locale(value)]
	return ok
}

// Normalize returns value as a Locale, falling back to the default.
func Normalize(value string) Locale {
	if IsLocale(value) {
		return Locale(value)
	}
	return DefaultLocale
}

// Tag returns the BCP 47 tag for a locale.
func Tag(locale Locale) language.Tag {
	if tag, ok := localeTags[locale]; ok {
		return tag
	}
	return language.English
}

// Match negotiates a locale from an Accept-Language header value.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, _ := matcher.Match(tags...)
	switch index {
	case 1:
		return LocaleDA
	default:
		return LocaleEN
	}
}
