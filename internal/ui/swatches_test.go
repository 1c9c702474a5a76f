package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concrete-theme/concrete/internal/palette"
)

func TestSwatch(t *testing.T) {
	result := Swatch("primary", "#3592C4")

	assert.Contains(t, result, "primary")
	assert.Contains(t, result, "#3592C4")
	assert.GreaterOrEqual(t, lipgloss.Width(result), swatchWidth+len(" primary #3592C4"))
}

func TestSwatches(t *testing.T) {
	tree := palette.Group().
		MustSet("background", palette.Leaf("#2B2B2B")).
		MustSet("accent", palette.Group().
			MustSet("primary", palette.Leaf("#3592C4")).
			MustSet("muted", palette.Leaf("#4A6B80")))

	result := Swatches(tree)
	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "background")
	assert.Contains(t, lines[1], "accent")
	assert.Contains(t, lines[2], "primary")
	assert.True(t, strings.HasPrefix(lines[2], "  "), "group members are indented")
	assert.Contains(t, lines[3], "muted")
}

func TestSwatches_Empty(t *testing.T) {
	assert.Empty(t, Swatches(palette.Group()))
}
