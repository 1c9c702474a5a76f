package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the concrete CLI, taken from the Concrete color table
var (
	// Primary colors
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#3b5680", Dark: "#5c8ddb"}
	ColorGreen   = lipgloss.AdaptiveColor{Light: "#4e7a45", Dark: "#78b36a"}
	ColorYellow  = lipgloss.AdaptiveColor{Light: "#9a6e22", Dark: "#d8a24a"}
	ColorRed     = lipgloss.AdaptiveColor{Light: "#8e3f47", Dark: "#d9606a"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2f6f88", Dark: "#5aa6c4"}
	ColorConcrete = lipgloss.AdaptiveColor{Light: "#41474f", Dark: "#c4c8cc"}

	// Neutral colors
	ColorGray = lipgloss.AdaptiveColor{Light: "#767c84", Dark: "#8e949b"}
	ColorDim  = lipgloss.AdaptiveColor{Light: "#8e949b", Dark: "#565c64"}
)
