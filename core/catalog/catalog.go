package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// PathSeparator joins node keys into key paths.
const PathSeparator = "."

// SkipGroup can be returned from a WalkFunc to skip the children of a group.
var SkipGroup = errors.New("skip this group")

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(path string, n *Node) error

// Option configures a Catalog during construction.
type Option func(*Catalog) error

// Choice is one entry of an option set: the key submitted with the form
// and the label shown to the user.
type Choice struct {
	Key  string          `json:"key" yaml:"key"`
	Text LocalizedString `json:"text" yaml:"text"`
}

// Record is a flattened leaf: its full key path and its texts.
type Record struct {
	Path string          `json:"key" yaml:"key"`
	Text LocalizedString `json:"text" yaml:"text"`
}

// Catalog is an immutable tree of localized strings for one form variant.
// All indexes are built in New; lookups are map reads and safe for
// concurrent use without locking.
type Catalog struct {
	name        string
	description string
	root        *Node

	// every node by its full key path
	index map[string]*Node
	// leaf paths in declaration order
	paths    []string
	checksum string

	missingKeyHandler func(catalog, keyPath string, locale Locale)
}

// WithDescription sets a human readable description.
func WithDescription(desc string) Option {
	return func(c *Catalog) error {
		c.description = desc
		return nil
	}
}

// WithMissingKeyHandler registers a function called whenever Lookup fails
// because the key path does not resolve to a leaf.
func WithMissingKeyHandler(fn func(catalog, keyPath string, locale Locale)) Option {
	return func(c *Catalog) error {
		c.missingKeyHandler = fn
		return nil
	}
}

// New builds a catalog named name from the given top-level nodes.
func New(name string, nodes []*Node, opts ...Option) (*Catalog, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	c := &Catalog{
		name:  name,
		root:  &Node{kind: KindGroup, children: nodes},
		index: make(map[string]*Node),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if err := c.build(c.root, ""); err != nil {
		return nil, fmt.Errorf("catalog %q: %w", name, err)
	}

	c.checksum = computeChecksum(c.Records())

	return c, nil
}

// MustNew is like New but panics on error. Intended for package-level
// catalogs declared from literal data.
func MustNew(name string, nodes []*Node, opts ...Option) *Catalog {
	c, err := New(name, nodes, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) build(n *Node, prefix string) error {
	seen := make(map[string]struct{}, len(n.children))
	for _, child := range n.children {
		if child == nil {
			return fmt.Errorf("%w: nil node under %q", ErrInvalidKey, prefix)
		}
		if child.key == "" || strings.Contains(child.key, PathSeparator) {
			return fmt.Errorf("%w: %q under %q", ErrInvalidKey, child.key, prefix)
		}
		if _, dup := seen[child.key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, joinPath(prefix, child.key))
		}
		seen[child.key] = struct{}{}

		path := joinPath(prefix, child.key)
		c.index[path] = child

		switch child.kind {
		case KindLeaf:
			c.paths = append(c.paths, path)
		case KindOptionSet:
			for _, opt := range child.children {
				if opt == nil || opt.kind != KindLeaf {
					return fmt.Errorf("%w: %q", ErrInvalidOption, path)
				}
			}
			if err := c.build(child, path); err != nil {
				return err
			}
		case KindGroup:
			if err := c.build(child, path); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unknown node kind at %q", ErrInvalidKey, path)
		}
	}
	return nil
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Description returns the catalog description.
func (c *Catalog) Description() string { return c.description }

// Len returns the number of leaves.
func (c *Catalog) Len() int { return len(c.paths) }

// Checksum returns a hex SHA-256 digest of all records in declaration order.
// It changes whenever a key, its position or any text changes.
func (c *Catalog) Checksum() string { return c.checksum }

// Lookup returns the text stored at keyPath for locale.
// It fails with *UnsupportedLocaleError for unknown locales and with
// *MissingKeyError when keyPath is absent or points to a group.
// There is no fallback to another locale.
func (c *Catalog) Lookup(keyPath string, locale Locale) (string, error) {
	if !locale.Valid() {
		return "", &UnsupportedLocaleError{Locale: string(locale)}
	}

	text, err := c.Entry(keyPath)
	if err != nil {
		if c.missingKeyHandler != nil {
			c.missingKeyHandler(c.name, keyPath, locale)
		}
		return "", err
	}

	return text.Get(locale)
}

// Entry returns the full five-locale record stored at keyPath.
func (c *Catalog) Entry(keyPath string) (LocalizedString, error) {
	n, ok := c.index[keyPath]
	if !ok {
		return LocalizedString{}, &MissingKeyError{Catalog: c.name, KeyPath: keyPath}
	}
	if n.kind != KindLeaf {
		return LocalizedString{}, &MissingKeyError{Catalog: c.name, KeyPath: keyPath, Group: true}
	}
	return n.text, nil
}

// Options returns the choices of the option set at keyPath in declaration order.
// Each call returns a new slice.
func (c *Catalog) Options(keyPath string) ([]Choice, error) {
	n, ok := c.index[keyPath]
	if !ok {
		return nil, &MissingKeyError{Catalog: c.name, KeyPath: keyPath}
	}
	if n.kind != KindOptionSet {
		return nil, fmt.Errorf("%w: %q is a %s", ErrNotOptionSet, keyPath, n.kind)
	}

	out := make([]Choice, 0, len(n.children))
	for _, o := range n.children {
		out = append(out, Choice{Key: o.key, Text: o.text})
	}
	return out, nil
}

// Node returns the node at keyPath. An empty path returns the root group.
func (c *Catalog) Node(keyPath string) (*Node, error) {
	if keyPath == "" {
		return c.root, nil
	}
	n, ok := c.index[keyPath]
	if !ok {
		return nil, &MissingKeyError{Catalog: c.name, KeyPath: keyPath}
	}
	return n, nil
}

// Keys returns the child keys of the group at keyPath in declaration order.
// An empty path lists the top-level keys.
func (c *Catalog) Keys(keyPath string) ([]string, error) {
	n, err := c.Node(keyPath)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(n.children))
	for _, ch := range n.children {
		keys = append(keys, ch.key)
	}
	return keys, nil
}

// Has reports whether keyPath resolves to any node.
func (c *Catalog) Has(keyPath string) bool {
	_, ok := c.index[keyPath]
	return ok
}

// Paths returns all leaf key paths in declaration order.
func (c *Catalog) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// Records returns every leaf with its path in declaration order.
func (c *Catalog) Records() []Record {
	out := make([]Record, 0, len(c.paths))
	for _, p := range c.paths {
		out = append(out, Record{Path: p, Text: c.index[p].text})
	}
	return out
}

// Walk visits every node depth-first in declaration order.
// Returning SkipGroup from fn for a group skips its children; for a leaf
// it skips the leaf's remaining siblings. Any other error stops the walk
// and is returned.
func (c *Catalog) Walk(fn WalkFunc) error {
	err := walk(c.root, "", fn)
	if errors.Is(err, SkipGroup) {
		return nil
	}
	return err
}

// WalkFrom is like Walk but starts at the node at keyPath (the node itself is visited first).
func (c *Catalog) WalkFrom(keyPath string, fn WalkFunc) error {
	n, err := c.Node(keyPath)
	if err != nil {
		return err
	}
	if keyPath == "" {
		return c.Walk(fn)
	}
	if err := fn(keyPath, n); err != nil {
		if errors.Is(err, SkipGroup) {
			return nil
		}
		return err
	}
	return walk(n, keyPath, fn)
}

func walk(n *Node, prefix string, fn WalkFunc) error {
	for _, child := range n.children {
		path := joinPath(prefix, child.key)
		if err := fn(path, child); err != nil {
			if !errors.Is(err, SkipGroup) {
				return err
			}
			if child.kind == KindLeaf {
				return nil
			}
			continue
		}
		if child.kind != KindLeaf {
			if err := walk(child, path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + PathSeparator + key
}

func computeChecksum(records []Record) string {
	h := sha256.New()
	for _, r := range records {
		h.Write([]byte(r.Path))
		for _, v := range r.Text.Values() {
			h.Write([]byte{0})
			h.Write([]byte(v))
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
