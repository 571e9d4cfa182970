package catalog

// LocalizedString holds one text in all five supported locales.
// Every field is always present; an untranslated value is either empty
// or a copy of the English text.
type LocalizedString struct {
	EN string `json:"en" yaml:"en"`
	HI string `json:"hi" yaml:"hi"`
	TA string `json:"ta" yaml:"ta"`
	TE string `json:"te" yaml:"te"`
	GU string `json:"gu" yaml:"gu"`
}

// Entry builds a LocalizedString from its five translations.
// Arguments follow the fixed locale order en, hi, ta, te, gu.
// Values are stored as given.
func Entry(en, hi, ta, te, gu string) LocalizedString {
	return LocalizedString{EN: en, HI: hi, TA: ta, TE: te, GU: gu}
}

// Get returns the text for the given locale.
func (s LocalizedString) Get(locale Locale) (string, error) {
	switch locale {
	case English:
		return s.EN, nil
	case Hindi:
		return s.HI, nil
	case Tamil:
		return s.TA, nil
	case Telugu:
		return s.TE, nil
	case Gujarati:
		return s.GU, nil
	}
	return "", &UnsupportedLocaleError{Locale: string(locale)}
}

// Values returns the five texts in locale order.
func (s LocalizedString) Values() []string {
	return []string{s.EN, s.HI, s.TA, s.TE, s.GU}
}

// Map returns the texts keyed by locale.
func (s LocalizedString) Map() map[Locale]string {
	return map[Locale]string{
		English:  s.EN,
		Hindi:    s.HI,
		Tamil:    s.TA,
		Telugu:   s.TE,
		Gujarati: s.GU,
	}
}
