package catalog

import "strings"

// Locale is one of the five language codes every catalog entry carries.
type Locale string

// Supported locales.
const (
	English  Locale = "en"
	Hindi    Locale = "hi"
	Tamil    Locale = "ta"
	Telugu   Locale = "te"
	Gujarati Locale = "gu"
)

// DefaultLocale is the locale used when negotiation finds no better match.
const DefaultLocale = English

var supportedLocales = [...]Locale{English, Hindi, Tamil, Telugu, Gujarati}

// Locales returns the supported locales in their fixed order: en, hi, ta, te, gu.
func Locales() []Locale {
	out := make([]Locale, len(supportedLocales))
	copy(out, supportedLocales[:])
	return out
}

// Valid reports whether l is a supported locale code.
func (l Locale) Valid() bool {
	switch l {
	case English, Hindi, Tamil, Telugu, Gujarati:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// ParseLocale normalizes s and returns the matching locale.
// Region subtags are not accepted: "en-US" is an unsupported locale.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", &UnsupportedLocaleError{Locale: s}
	}
	return l, nil
}
