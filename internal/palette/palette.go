// Package palette holds the color table shared by the preview page and the
// editor theme exporters.
//
// A table is a tree of Nodes. Leaves carry a color value, groups carry an
// ordered set of named children. Group order is the order the entries were
// added (or appeared in the source YAML) and every renderer preserves it.
package palette

import (
	"fmt"
	"strings"
)

// Kind distinguishes leaves from groups
type Kind int

const (
	KindLeaf Kind = iota
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Entry is a named child of a group
type Entry struct {
	Name string
	Node *Node
}

// Node is either a leaf color value or a group of named children.
// Nodes are built once and treated as immutable afterwards.
type Node struct {
	kind    Kind
	value   string
	entries []Entry
	index   map[string]int
}

// Leaf creates a leaf node holding a color value
func Leaf(value string) *Node {
	return &Node{kind: KindLeaf, value: value}
}

// Group creates an empty group node
func Group() *Node {
	return &Node{kind: KindGroup, index: make(map[string]int)}
}

// Kind reports whether n is a leaf or a group
func (n *Node) Kind() Kind { return n.kind }

// IsLeaf reports whether n is a leaf
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// Value returns the color value of a leaf, or "" for a group
func (n *Node) Value() string { return n.value }

// Entries returns the children of a group in insertion order.
// The returned slice must not be modified.
func (n *Node) Entries() []Entry { return n.entries }

// Len returns the number of direct children
func (n *Node) Len() int { return len(n.entries) }

// Set appends a child to a group. Setting an existing name is an error
// because group keys are unique.
func (n *Node) Set(name string, child *Node) error {
	if n.kind != KindGroup {
		return fmt.Errorf("cannot add %q to a leaf", name)
	}
	if child == nil {
		return fmt.Errorf("nil node for %q", name)
	}
	if _, exists := n.index[name]; exists {
		return fmt.Errorf("duplicate key %q", name)
	}
	n.index[name] = len(n.entries)
	n.entries = append(n.entries, Entry{Name: name, Node: child})
	return nil
}

// MustSet is like Set but panics on error. Intended for literal tables.
func (n *Node) MustSet(name string, child *Node) *Node {
	if err := n.Set(name, child); err != nil {
		panic(err)
	}
	return n
}

// Child returns the direct child with the given name
func (n *Node) Child(name string) (*Node, bool) {
	if n.kind != KindGroup {
		return nil, false
	}
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.entries[i].Node, true
}

// Get resolves a dotted path (e.g. "neutral.840") to a node.
func (n *Node) Get(path string) (*Node, error) {
	if path == "" {
		return nil, &MissingFieldError{Path: path}
	}

	cur := n
	for _, part := range strings.Split(path, ".") {
		next, ok := cur.Child(part)
		if !ok {
			return nil, &MissingFieldError{Path: path}
		}
		cur = next
	}
	return cur, nil
}

// Lookup resolves a dotted path to a leaf value. A path that ends on a
// group is reported as missing since no color is stored there.
func (n *Node) Lookup(path string) (string, error) {
	node, err := n.Get(path)
	if err != nil {
		return "", err
	}
	if !node.IsLeaf() {
		return "", &MissingFieldError{Path: path, Group: true}
	}
	return node.value, nil
}

// Visitor is called for every node during Walk. path holds the names from
// the root down to and including the current node.
type Visitor func(path []string, node *Node) error

// Walk visits n's descendants depth first, in insertion order. The root
// itself is not visited.
func (n *Node) Walk(fn Visitor) error {
	return n.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn Visitor) error {
	for _, e := range n.entries {
		path := append(prefix[:len(prefix):len(prefix)], e.Name)
		if err := fn(path, e.Node); err != nil {
			return err
		}
		if !e.Node.IsLeaf() {
			if err := e.Node.walk(path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Leaves returns the dotted path of every leaf in traversal order
func (n *Node) Leaves() []string {
	var paths []string
	_ = n.Walk(func(path []string, node *Node) error {
		if node.IsLeaf() {
			paths = append(paths, strings.Join(path, "."))
		}
		return nil
	})
	return paths
}
