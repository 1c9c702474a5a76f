package theme

import (
	"fmt"

	"github.com/concrete-theme/concrete/internal/palette"
)

// Build creates a document from tpl, taking referenced colors from colors.
//
// All references are resolved before the document is assembled, so a
// missing color fails with *palette.MissingFieldError and no document.
// Strings without the reference prefix are copied unchanged; symbolic
// values such as "accentColor" are left for the editor to resolve.
func Build(tpl *Template, colors *palette.Node) (*Document, error) {
	resolved := make(map[string]string, len(tpl.refs))
	for _, ref := range tpl.refs {
		value, err := colors.Lookup(ref)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", tpl.Name, err)
		}
		resolved[ref] = value
	}

	doc, err := buildObject(tpl.root, resolved)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", tpl.Name, err)
	}
	return doc, nil
}

func buildObject(n *tplNode, resolved map[string]string) (*Object, error) {
	obj := NewObject()
	for _, m := range n.members {
		switch m.node.kind {
		case objectNode:
			child, err := buildObject(m.node, resolved)
			if err != nil {
				return nil, err
			}
			obj.Set(m.key, child)
		case refNode:
			value, ok := resolved[m.node.ref]
			if !ok {
				return nil, fmt.Errorf("%w: %s", errUnresolved, m.node.ref)
			}
			obj.Set(m.key, value)
		default:
			obj.Set(m.key, m.node.value)
		}
	}
	return obj, nil
}

// Check reports the first reference in tpl that colors cannot satisfy
func Check(tpl *Template, colors *palette.Node) error {
	for _, ref := range tpl.refs {
		if _, err := colors.Lookup(ref); err != nil {
			return err
		}
	}
	return nil
}
