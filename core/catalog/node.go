package catalog

// Kind identifies the role of a node in the catalog tree.
type Kind uint8

const (
	// KindGroup is a named set of child nodes (sections, questions).
	KindGroup Kind = iota + 1
	// KindOptionSet is a group of user-selectable choices whose order is significant.
	KindOptionSet
	// KindLeaf holds a LocalizedString.
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindOptionSet:
		return "option_set"
	case KindLeaf:
		return "leaf"
	}
	return "unknown"
}

// Node is an element of the catalog tree.
// Nodes are never modified after construction, so one node may be
// referenced from several catalogs.
type Node struct {
	key      string
	kind     Kind
	text     LocalizedString
	children []*Node
}

// Leaf creates a text node.
func Leaf(key string, text LocalizedString) *Node {
	return &Node{key: key, kind: KindLeaf, text: text}
}

// Group creates a group node with children in declaration order.
func Group(key string, children ...*Node) *Node {
	return &Node{key: key, kind: KindGroup, children: children}
}

// OptionSet creates an ordered set of choices. Every child must be a leaf;
// catalog construction fails otherwise.
func OptionSet(key string, options ...*Node) *Node {
	return &Node{key: key, kind: KindOptionSet, children: options}
}

// Key returns the node key (a single path segment).
func (n *Node) Key() string { return n.key }

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// IsLeaf reports whether the node holds text.
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// Text returns the leaf text. It is the zero value for groups.
func (n *Node) Text() LocalizedString { return n.text }

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Children returns a copy of the direct children in declaration order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}
