package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/formcatalog/core/catalog"
)

// Bundle returns the catalog as nested maps with the texts of one locale,
// the shape UI i18n libraries load. Map key order is not preserved; use
// WriteJSON when order matters.
func Bundle(c *catalog.Catalog, locale catalog.Locale) (map[string]any, error) {
	if !locale.Valid() {
		return nil, &catalog.UnsupportedLocaleError{Locale: string(locale)}
	}
	root, err := c.Node("")
	if err != nil {
		return nil, err
	}
	return bundleOf(root, locale), nil
}

func bundleOf(n *catalog.Node, locale catalog.Locale) map[string]any {
	out := make(map[string]any, n.Len())
	for _, child := range n.Children() {
		if child.IsLeaf() {
			text, _ := child.Text().Get(locale)
			out[child.Key()] = text
			continue
		}
		out[child.Key()] = bundleOf(child, locale)
	}
	return out
}

// WriteJSON writes the nested bundle for locale with object keys in
// declaration order and two-space indentation.
func WriteJSON(w io.Writer, c *catalog.Catalog, locale catalog.Locale) error {
	if !locale.Valid() {
		return &catalog.UnsupportedLocaleError{Locale: string(locale)}
	}
	root, err := c.Node("")
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeObject(bw, root, locale, 0); err != nil {
		return fmt.Errorf("export: write json: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("export: write json: %w", err)
	}
	return bw.Flush()
}

func writeObject(w *bufio.Writer, n *catalog.Node, locale catalog.Locale, depth int) error {
	children := n.Children()
	if len(children) == 0 {
		_, err := w.WriteString("{}")
		return err
	}

	w.WriteString("{\n")
	for i, child := range children {
		indent(w, depth+1)
		if err := writeString(w, child.Key()); err != nil {
			return err
		}
		w.WriteString(": ")

		if child.IsLeaf() {
			text, _ := child.Text().Get(locale)
			if err := writeString(w, text); err != nil {
				return err
			}
		} else if err := writeObject(w, child, locale, depth+1); err != nil {
			return err
		}

		if i < len(children)-1 {
			w.WriteByte(',')
		}
		w.WriteByte('\n')
	}
	indent(w, depth)
	_, err := w.WriteString("}")
	return err
}

// writeString writes s as a JSON string without HTML escaping ("&" stays readable).
func writeString(w *bufio.Writer, s string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

func indent(w *bufio.Writer, depth int) {
	for range depth {
		w.WriteString("  ")
	}
}
