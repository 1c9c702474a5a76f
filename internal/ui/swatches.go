package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/concrete-theme/concrete/internal/palette"
)

const swatchWidth = 6

var swatchLabelStyle = lipgloss.NewStyle().PaddingLeft(1)

// Swatch renders one color as a filled block followed by its name and value
func Swatch(name, value string) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(value)).
		Render(strings.Repeat(" ", swatchWidth))
	return block + swatchLabelStyle.Render(name) + " " + StyleDim.Render(value)
}

// Swatches renders a color table for the terminal: one line per color,
// groups as indented headings, in table order.
func Swatches(tree *palette.Node) string {
	var b strings.Builder
	writeSwatches(&b, tree, 0)
	return b.String()
}

func writeSwatches(b *strings.Builder, node *palette.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range node.Entries() {
		if e.Node.IsLeaf() {
			b.WriteString(indent + Swatch(e.Name, e.Node.Value()) + "\n")
			continue
		}
		b.WriteString(indent + StyleLabel.Render(e.Name) + "\n")
		writeSwatches(b, e.Node, depth+1)
	}
}
