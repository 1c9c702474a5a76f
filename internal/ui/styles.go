package ui

import "github.com/charmbracelet/lipgloss"

// Base text styles
var (
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleDim  = lipgloss.NewStyle().Foreground(ColorDim)
)

// Colored text styles
var (
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleGray   = lipgloss.NewStyle().Foreground(ColorGray)
)

// Semantic styles
var (
	StyleHeader  = StyleBold.Foreground(ColorConcrete)
	StyleSuccess = StyleBold.Foreground(ColorGreen)
	StyleWarning = StyleBold.Foreground(ColorYellow)
	StyleError   = StyleBold.Foreground(ColorRed)
	StyleLabel   = StyleBold.Foreground(ColorAccent)
)

// Component styles
var (
	StyleCommand = StyleAccent
	StyleComment = StyleDim
	StylePath    = StyleGray.Italic(true)
)

// Box styles
var (
	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorRed).
			Padding(0, 1).
			MaxWidth(80)

	InfoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorInfo).
			Padding(0, 1).
			MaxWidth(80)

	SuccessBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 1).
			MaxWidth(80)
)

// Table styles
var (
	TableHeaderStyle = StyleBold.
				Foreground(ColorAccent).
				PaddingRight(2)

	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)
