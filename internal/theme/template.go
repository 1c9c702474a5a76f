package theme

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// RefPrefix marks a template string as a color path. "$$" escapes a
// literal leading dollar sign.
const RefPrefix = "$"

type nodeKind int

const (
	literalNode nodeKind = iota
	refNode
	objectNode
)

type tplMember struct {
	key  string
	node *tplNode
}

type tplNode struct {
	kind    nodeKind
	value   any
	ref     string
	members []tplMember
}

// Template is the declarative shape of a theme document. Parse it once and
// build as many documents from it as needed.
type Template struct {
	Name string
	root *tplNode
	refs []string
}

// ParseTemplate decodes a YAML theme template. Mapping order is kept.
func ParseTemplate(name string, data []byte) (*Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("template %s: failed to parse: %w", name, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("template %s: empty template", name)
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("template %s: line %d: root must be a mapping", name, doc.Content[0].Line)
	}

	root, err := parseNode(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}

	tpl := &Template{Name: name, root: root}
	tpl.refs = collectRefs(root, nil, make(map[string]bool))
	return tpl, nil
}

// References returns every color path the template needs, in template
// order and without duplicates.
func (t *Template) References() []string {
	out := make([]string, len(t.refs))
	copy(out, t.refs)
	return out
}

func collectRefs(n *tplNode, refs []string, seen map[string]bool) []string {
	switch n.kind {
	case refNode:
		if !seen[n.ref] {
			seen[n.ref] = true
			refs = append(refs, n.ref)
		}
	case objectNode:
		for _, m := range n.members {
			refs = collectRefs(m.node, refs, seen)
		}
	}
	return refs
}

func parseNode(n *yaml.Node) (*tplNode, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.MappingNode:
		obj := &tplNode{kind: objectNode}
		seen := make(map[string]int)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode || key.Tag == "!!merge" {
				return nil, fmt.Errorf("line %d: keys must be plain scalars", key.Line)
			}
			if line, dup := seen[key.Value]; dup {
				return nil, fmt.Errorf("line %d: key %q already defined at line %d", key.Line, key.Value, line)
			}
			seen[key.Value] = key.Line

			child, err := parseNode(value)
			if err != nil {
				return nil, err
			}
			obj.members = append(obj.members, tplMember{key: key.Value, node: child})
		}
		return obj, nil

	case yaml.ScalarNode:
		return parseScalar(n)

	default:
		return nil, fmt.Errorf("line %d: sequences are not supported in theme templates", n.Line)
	}
}

func parseScalar(n *yaml.Node) (*tplNode, error) {
	switch n.Tag {
	case "!!null":
		return nil, fmt.Errorf("line %d: empty value", n.Line)
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return &tplNode{kind: literalNode, value: b}, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		return &tplNode{kind: literalNode, value: i}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("line %d: %s is not a finite number", n.Line, n.Value)
		}
		return &tplNode{kind: literalNode, value: f}, nil
	}

	s := n.Value
	switch {
	case strings.HasPrefix(s, RefPrefix+RefPrefix):
		return &tplNode{kind: literalNode, value: s[len(RefPrefix):]}, nil
	case strings.HasPrefix(s, RefPrefix):
		ref := strings.TrimPrefix(s, RefPrefix)
		if ref == "" || strings.HasPrefix(ref, ".") || strings.HasSuffix(ref, ".") || strings.Contains(ref, "..") {
			return nil, fmt.Errorf("line %d: invalid color path %q", n.Line, s)
		}
		return &tplNode{kind: refNode, ref: ref}, nil
	default:
		return &tplNode{kind: literalNode, value: s}, nil
	}
}

var errUnresolved = errors.New("unresolved color reference")
