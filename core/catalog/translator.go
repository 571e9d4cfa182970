package catalog

// Label is an option-set choice resolved in a single locale.
type Label struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Translator is a read-only view of a catalog bound to one locale.
// It is what UI rendering code holds for the duration of a request.
type Translator struct {
	catalog *Catalog
	locale  Locale
}

// NewTranslator binds c to locale. Unsupported locales are replaced by DefaultLocale.
func NewTranslator(c *Catalog, locale Locale) *Translator {
	if c == nil {
		panic("catalog: translator requires a catalog")
	}
	if !locale.Valid() {
		locale = DefaultLocale
	}
	return &Translator{catalog: c, locale: locale}
}

// T returns the text at key, or key itself when it does not resolve to a leaf.
// Use Lookup to get the error instead.
func (t *Translator) T(key string) string {
	text, err := t.catalog.Lookup(key, t.locale)
	if err != nil {
		return key
	}
	return text
}

// Lookup returns the text at key in the translator locale.
func (t *Translator) Lookup(key string) (string, error) {
	return t.catalog.Lookup(key, t.locale)
}

// Options resolves the option set at key into labels, keeping declaration order.
func (t *Translator) Options(key string) ([]Label, error) {
	choices, err := t.catalog.Options(key)
	if err != nil {
		return nil, err
	}

	labels := make([]Label, 0, len(choices))
	for _, ch := range choices {
		text, err := ch.Text.Get(t.locale)
		if err != nil {
			return nil, err
		}
		labels = append(labels, Label{Key: ch.Key, Text: text})
	}
	return labels, nil
}

// Locale returns the bound locale.
func (t *Translator) Locale() Locale { return t.locale }

// Catalog returns the underlying catalog.
func (t *Translator) Catalog() *Catalog { return t.catalog }
