package export

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	fc "github.com/dmitrymomot/formcatalog/core/catalog"
)

// MessageKey is the x/text message key of a leaf: "<catalog>:<path>".
func MessageKey(catalogName, keyPath string) string {
	return catalogName + ":" + keyPath
}

// MessageCatalog loads every leaf of cs into an x/text catalog so Go code
// can print through message.NewPrinter(tag, message.Catalog(cat)).
//
// Every locale value is registered, empty ones included, and the builder
// has no fallback language: printing a key yields exactly the stored text.
// Literal "%" is escaped so %{name} placeholders come out intact.
func MessageCatalog(cs ...*fc.Catalog) (catalog.Catalog, error) {
	b := catalog.NewBuilder()

	for _, c := range cs {
		for _, rec := range c.Records() {
			key := MessageKey(c.Name(), rec.Path)
			values := rec.Text.Values()
			for i, l := range fc.Locales() {
				if err := b.SetString(messageTag(l), key, strings.ReplaceAll(values[i], "%", "%%")); err != nil {
					return nil, fmt.Errorf("export: message %s/%s: %w", key, l, err)
				}
			}
		}
	}
	return b, nil
}

// VerifyMessages prints every leaf of cs through a message.Printer backed by
// MessageCatalog and lists "<key> [<locale>]" for each text that does not
// come back unchanged.
func VerifyMessages(cs ...*fc.Catalog) ([]string, error) {
	cat, err := MessageCatalog(cs...)
	if err != nil {
		return nil, err
	}

	printers := make(map[fc.Locale]*message.Printer, len(fc.Locales()))
	for _, l := range fc.Locales() {
		printers[l] = message.NewPrinter(messageTag(l), message.Catalog(cat))
	}

	var diff []string
	for _, c := range cs {
		for _, rec := range c.Records() {
			key := MessageKey(c.Name(), rec.Path)
			values := rec.Text.Values()
			for i, l := range fc.Locales() {
				if got := printers[l].Sprintf(key); got != values[i] {
					diff = append(diff, fmt.Sprintf("%s [%s]", key, l))
				}
			}
		}
	}
	return diff, nil
}

func messageTag(l fc.Locale) language.Tag {
	return language.Make(string(l))
}
