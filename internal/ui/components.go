package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header renders a header with emoji and title
func Header(emoji, title string) string {
	text := title
	if emoji != "" {
		text = emoji + " " + title
	}
	return StyleHeader.Render(text) + "\n"
}

// Success renders a success message
func Success(message string) string {
	return StyleSuccess.Render("✓ " + message)
}

// Warning renders a warning message
func Warning(message string) string {
	return StyleWarning.Render("! " + message)
}

// Error renders an error message
func Error(message string) string {
	return StyleError.Render("✗ " + message)
}

// ErrorBox renders content in an error box with optional title
func ErrorBox(title, content string) string {
	if title == "" {
		title = "Error"
	}
	return "\n" + ErrorBoxStyle.Render(boxContent(StyleError.Render(title), truncateLines(content, 76))) + "\n"
}

// InfoBox renders content in an info box
func InfoBox(title, content string) string {
	if title == "" {
		title = "Info"
	}
	return "\n" + InfoBoxStyle.Render(boxContent(StyleLabel.Render(title), content)) + "\n"
}

// SuccessBox renders content in a success box
func SuccessBox(title, content string) string {
	if title == "" {
		title = "Success"
	}
	return "\n" + SuccessBoxStyle.Render(boxContent(StyleSuccess.Render(title), content)) + "\n"
}

func boxContent(title, content string) string {
	if content == "" {
		return title
	}
	return title + "\n\n" + content
}

// truncateLines shortens lines wider than maxWidth with an ellipsis
func truncateLines(content string, maxWidth int) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	for i, line := range lines {
		if len(line) > maxWidth {
			lines[i] = line[:maxWidth-3] + "..."
		}
	}
	return strings.Join(lines, "\n")
}

// CheckMark renders a green checkmark with optional label
func CheckMark(label string) string {
	if label == "" {
		return StyleGreen.Render("✓")
	}
	return StyleGreen.Render("✓ " + label)
}

// ProgressLine renders a check line like "label... ✓"
func ProgressLine(label string, passed bool, detail string) string {
	mark := StyleGreen.Render("✓")
	if !passed {
		mark = StyleRed.Render("✗")
	}
	line := fmt.Sprintf("  %s... %s", StyleDim.Render(label), mark)
	if detail != "" {
		line += " " + StyleGray.Render(detail)
	}
	return line + "\n"
}

// Step represents a step in the "Next steps" section
type Step struct {
	Command     string
	Description string
}

// NextSteps renders a "Next steps:" section with commands
func NextSteps(steps []Step) string {
	var b strings.Builder

	b.WriteString("\n" + StyleBold.Render("Next steps:") + "\n")

	for _, step := range steps {
		command := StyleCommand.Render(step.Command)
		desc := ""
		if step.Description != "" {
			desc = StyleComment.Render("  # " + step.Description)
		}
		b.WriteString("  " + command + desc + "\n")
	}

	return b.String()
}

// Table renders a simple table. Cells may already be styled; widths are
// measured without escape sequences.
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(TableHeaderStyle.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")

	for _, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(TableCellStyle.Render(pad(cell, widths[i])))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Section renders a section with title and content
func Section(title, content string) string {
	var b strings.Builder
	b.WriteString("\n" + StyleBold.Render(title) + "\n")
	b.WriteString(content)
	b.WriteString("\n")
	return b.String()
}
