package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcatalog/core/catalog"
)

// WriteYAML writes the whole tree as YAML. Groups become mappings in
// declaration order; each leaf becomes a mapping of locale code to text.
func WriteYAML(w io.Writer, c *catalog.Catalog) error {
	root, err := c.Node("")
	if err != nil {
		return err
	}

	doc := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{yamlGroup(root)},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: write yaml: %w", err)
	}
	return enc.Close()
}

func yamlGroup(n *catalog.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, child := range n.Children() {
		var value *yaml.Node
		if child.IsLeaf() {
			value = yamlLeaf(child.Text())
		} else {
			value = yamlGroup(child)
		}
		m.Content = append(m.Content, yamlScalar(child.Key()), value)
	}
	return m
}

func yamlLeaf(text catalog.LocalizedString) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	values := text.Values()
	for i, l := range catalog.Locales() {
		m.Content = append(m.Content, yamlScalar(string(l)), yamlScalar(values[i]))
	}
	return m
}

func yamlScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
