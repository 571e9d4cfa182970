package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/pkg/export"
)

func sample() *catalog.Catalog {
	return catalog.MustNew("sample", []*catalog.Node{
		catalog.Group("settings",
			catalog.Leaf("title", catalog.Entry("Settings", "सेटिंग्स", "அமைப்புகள்", "సెట్టింగ్‌లు", "સેટિંગ્સ")),
			catalog.Leaf("amp", catalog.Entry("Food & Staples", "खाद्य और राशन", "", "", "")),
		),
		catalog.OptionSet("zOptions",
			catalog.Leaf("b", catalog.Entry("B", "B", "B", "B", "B")),
			catalog.Leaf("a", catalog.Entry("A", "A", "A", "A", "A")),
		),
		catalog.Leaf("progress", catalog.Entry("Step %{current} of %{total}", "चरण %{current} / %{total}", "", "", "")),
	})
}

func TestBundle(t *testing.T) {
	b, err := export.Bundle(sample(), catalog.Hindi)
	require.NoError(t, err)

	settings, ok := b["settings"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "सेटिंग्स", settings["title"])
	assert.Equal(t, map[string]any{"b": "B", "a": "A"}, b["zOptions"])

	_, err = export.Bundle(sample(), "fr")
	assert.ErrorIs(t, err, catalog.ErrUnsupportedLocale)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, sample(), catalog.English))

	out := buf.String()
	assert.True(t, json.Valid(buf.Bytes()), out)
	assert.Contains(t, out, `"amp": "Food & Staples"`)
	assert.Less(t, strings.Index(out, `"b"`), strings.Index(out, `"a"`), "declaration order")
	assert.Less(t, strings.Index(out, `"settings"`), strings.Index(out, `"progress"`))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	want, err := export.Bundle(sample(), catalog.English)
	require.NoError(t, err)
	assert.Equal(t, want, decoded)

	assert.ErrorIs(t, export.WriteJSON(&buf, sample(), "xx"), catalog.ErrUnsupportedLocale)
}

func TestCSV(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		c := forms.General()

		var buf bytes.Buffer
		require.NoError(t, export.WriteCSV(&buf, c))
		assert.True(t, strings.HasPrefix(buf.String(), "key,en,hi,ta,te,gu\n"))

		records, err := export.ReadCSV(&buf)
		require.NoError(t, err)
		assert.Equal(t, c.Records(), records)
	})

	t.Run("rejects bad header", func(t *testing.T) {
		_, err := export.ReadCSV(strings.NewReader("path,en,hi,ta,te,gu\n"))
		assert.ErrorIs(t, err, export.ErrInvalidSheet)
	})

	t.Run("rejects wrong column count", func(t *testing.T) {
		_, err := export.ReadCSV(strings.NewReader("key,en,hi,ta,te,gu\na,b\n"))
		assert.ErrorIs(t, err, export.ErrInvalidSheet)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		in := "key,en,hi,ta,te,gu\na,1,2,3,4,5\na,1,2,3,4,5\n"
		_, err := export.ReadCSV(strings.NewReader(in))
		assert.ErrorIs(t, err, export.ErrInvalidSheet)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := export.ReadCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, export.ErrInvalidSheet)
	})
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, sample()))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Content, 1)
	root := doc.Content[0]
	var options *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "zOptions" {
			options = root.Content[i+1]
		}
	}
	require.NotNil(t, options)
	require.Len(t, options.Content, 4)
	assert.Equal(t, "b", options.Content[0].Value)
	assert.Equal(t, "a", options.Content[2].Value)

	var tree map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &tree))
	settings := tree["settings"].(map[string]any)
	title := settings["title"].(map[string]any)
	assert.Equal(t, "Settings", title["en"])
	assert.Equal(t, "સેટિંગ્સ", title["gu"])
	amp := settings["amp"].(map[string]any)
	assert.Equal(t, "", amp["ta"])
}

func TestMessageCatalog(t *testing.T) {
	cat, err := export.MessageCatalog(sample(), forms.General())
	require.NoError(t, err)

	en := message.NewPrinter(language.English, message.Catalog(cat))
	assert.Equal(t, "Settings", en.Sprintf(export.MessageKey("sample", "settings.title")))
	assert.Equal(t, "Step %{current} of %{total}", en.Sprintf(export.MessageKey("sample", "progress")))

	hi := message.NewPrinter(language.Hindi, message.Catalog(cat))
	assert.Equal(t, "सेटिंग्स", hi.Sprintf(export.MessageKey("sample", "settings.title")))
	assert.Equal(t, "सेटिंग्स", hi.Sprintf(export.MessageKey(forms.GeneralName, "settings.title")))

	t.Run("empty text stays empty", func(t *testing.T) {
		ta := message.NewPrinter(language.Tamil, message.Catalog(cat))
		assert.Equal(t, "", ta.Sprintf(export.MessageKey("sample", "settings.amp")))
		assert.Equal(t, "", ta.Sprintf(export.MessageKey("sample", "progress")))

		want, err := sample().Lookup("settings.amp", catalog.Tamil)
		require.NoError(t, err)
		assert.Equal(t, want, ta.Sprintf(export.MessageKey("sample", "settings.amp")))
	})
}

func TestVerifyMessages(t *testing.T) {
	diff, err := export.VerifyMessages(sample(), forms.General(), forms.Apparel(), forms.Industrial())
	require.NoError(t, err)
	assert.Empty(t, diff)
}
