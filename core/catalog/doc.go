// Package catalog provides immutable, tree-shaped translation catalogs for
// multi-step form UIs localized into English, Hindi, Tamil, Telugu and Gujarati.
//
// A catalog is a tree of two node kinds: groups (sections, questions, option
// sets) and leaves (a LocalizedString carrying all five locales). Trees are
// declared once from literal data, validated and indexed by New, and never
// modified afterwards, which makes a *Catalog safe for concurrent use without
// locking.
//
// # Declaring a catalog
//
//	audio := catalog.Group("audio",
//		catalog.Leaf("start", catalog.Entry("Start Recording", "रिकॉर्डिंग शुरू करें", "பதிவைத் தொடங்கு", "రికార్డింగ్ ప్రారంభించండి", "રેકોર્ડિંગ શરૂ કરો")),
//	)
//
//	c, err := catalog.New("general", []*catalog.Node{
//		catalog.Group("formTranslations", audio),
//	})
//
// Groups and option sets keep their children in declaration order. Keys are
// single path segments and must not contain ".". The same *Node may appear in
// several catalogs; this is how shared sections are kept identical.
//
// # Lookups
//
// Key paths are dot separated:
//
//	text, err := c.Lookup("formTranslations.audio.start", catalog.Hindi)
//
// Lookup never falls back to another locale. It returns *UnsupportedLocaleError
// for codes outside the five supported ones and *MissingKeyError when the path
// does not exist or points to a group. Both match their sentinels with errors.Is:
//
//	if errors.Is(err, catalog.ErrMissingKey) { ... }
//
// Option sets are read with Options, which returns choices in the order they
// were declared; that order is the on-screen order.
//
// # Translators
//
// A Translator binds a catalog to one locale. Its T method returns the key
// itself when a lookup fails, which is convenient inside templates:
//
//	tr := catalog.NewTranslator(c, catalog.MatchLocale(r.Header.Get("Accept-Language")))
//	title := tr.T("settings.title")
//
// # Data quality
//
// Lint reports empty fields, untranslated fields, text that is not NFC
// normalized and placeholder tokens (%{name}) that differ from English.
// CompareShape and CompareText check that shared subtrees have not drifted
// between catalogs.
package catalog
