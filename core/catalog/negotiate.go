package catalog

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// English comes first: the matcher treats the first tag as the fallback.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
	language.Tamil,
	language.Telugu,
	language.Gujarati,
})

// MatchLocale picks the supported locale that best satisfies an
// Accept-Language header value, e.g. "ta-IN,ta;q=0.9,en;q=0.8".
// It returns DefaultLocale for empty, malformed or unmatched headers.
func MatchLocale(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[index]
}
