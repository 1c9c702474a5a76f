// Package preview renders a color table as an HTML page of swatches.
package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/concrete-theme/concrete/internal/palette"
)

// Render returns the list items for every entry of tree, recursing into
// groups. Entries appear in the table's insertion order.
func Render(tree *palette.Node) string {
	items := make([]string, 0, tree.Len())
	for _, e := range tree.Entries() {
		items = append(items, renderEntry(e.Name, e.Node))
	}
	return strings.Join(items, "\n")
}

// Swatch returns the markup for a single color
func Swatch(name, value string) string {
	v := html.EscapeString(value)
	return fmt.Sprintf(`<li class="color" style="background-color: %s; border-color: %s">%s</li>`,
		v, v, html.EscapeString(name))
}

func renderEntry(name string, node *palette.Node) string {
	if node.IsLeaf() {
		return Swatch(name, node.Value())
	}

	var b strings.Builder
	b.WriteString("<li>\n")
	fmt.Fprintf(&b, "<p class=\"label\">%s</p>\n", html.EscapeString(name))
	b.WriteString("<ul>\n")
	if node.Len() > 0 {
		b.WriteString(Render(node))
		b.WriteString("\n")
	}
	b.WriteString("</ul>\n")
	b.WriteString("</li>")
	return b.String()
}
