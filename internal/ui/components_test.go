package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// TestHeader tests header rendering
func TestHeader(t *testing.T) {
	tests := []struct {
		name     string
		emoji    string
		title    string
		contains []string
	}{
		{
			name:     "basic header",
			emoji:    "🎨",
			title:    "Concrete",
			contains: []string{"🎨", "Concrete"},
		},
		{
			name:     "empty emoji",
			emoji:    "",
			title:    "Test",
			contains: []string{"Test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Header(tt.emoji, tt.title)
			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("Header(%q, %q) = %q, missing %q", tt.emoji, tt.title, result, s)
				}
			}
			if strings.HasPrefix(result, " ") {
				t.Errorf("Header(%q, %q) has a leading space", tt.emoji, tt.title)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
		mark   string
	}{
		{name: "success", render: Success, mark: "✓"},
		{name: "warning", render: Warning, mark: "!"},
		{name: "error", render: Error, mark: "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.render("theme written")
			if !strings.Contains(result, "theme written") {
				t.Errorf("%s() missing message: %q", tt.name, result)
			}
			if !strings.Contains(result, tt.mark) {
				t.Errorf("%s() missing mark %q: %q", tt.name, tt.mark, result)
			}
		})
	}
}

// TestErrorBox tests error box rendering
func TestErrorBox(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		contains []string
	}{
		{
			name:     "with title and content",
			title:    "Generation failed",
			content:  `missing field "semantic.error"`,
			contains: []string{"Generation failed", "semantic.error"},
		},
		{
			name:     "default title",
			title:    "",
			content:  "something broke",
			contains: []string{"Error", "something broke"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ErrorBox(tt.title, tt.content)
			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("ErrorBox() = %q, missing %q", result, s)
				}
			}
		})
	}
}

// TestErrorBox_LongContent tests that long lines are shortened
func TestErrorBox_LongContent(t *testing.T) {
	long := strings.Repeat("x", 120)
	result := ErrorBox("Long", long)
	if strings.Contains(result, long) {
		t.Error("ErrorBox() should truncate long lines")
	}
	if !strings.Contains(result, "...") {
		t.Error("ErrorBox() should mark truncated lines")
	}
}

func TestInfoAndSuccessBox(t *testing.T) {
	info := InfoBox("", "details")
	if !strings.Contains(info, "Info") || !strings.Contains(info, "details") {
		t.Errorf("InfoBox() = %q", info)
	}

	success := SuccessBox("Done", "")
	if !strings.Contains(success, "Done") {
		t.Errorf("SuccessBox() = %q", success)
	}
}

// TestCheckMark tests checkmark rendering
func TestCheckMark(t *testing.T) {
	if got := CheckMark(""); !strings.Contains(got, "✓") {
		t.Errorf("CheckMark(\"\") = %q", got)
	}
	if got := CheckMark("Done"); !strings.Contains(got, "✓ Done") {
		t.Errorf("CheckMark(Done) = %q", got)
	}
}

// TestProgressLine tests check line rendering
func TestProgressLine(t *testing.T) {
	tests := []struct {
		name     string
		passed   bool
		detail   string
		contains []string
	}{
		{name: "passed", passed: true, contains: []string{"Palette", "✓"}},
		{name: "failed", passed: false, detail: "missing field", contains: []string{"Palette", "✗", "missing field"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProgressLine("Palette", tt.passed, tt.detail)
			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("ProgressLine() = %q, missing %q", result, s)
				}
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("ProgressLine() should end with a newline")
			}
		})
	}
}

// TestNextSteps tests next steps rendering
func TestNextSteps(t *testing.T) {
	steps := []Step{
		{Command: "concrete generate", Description: "Write theme packages"},
		{Command: "concrete preview --output palette.html", Description: ""},
	}

	result := NextSteps(steps)

	if !strings.Contains(result, "Next steps:") {
		t.Error("NextSteps() missing header")
	}
	for _, step := range steps {
		if !strings.Contains(result, step.Command) {
			t.Errorf("NextSteps() missing command %q", step.Command)
		}
		if step.Description != "" && !strings.Contains(result, step.Description) {
			t.Errorf("NextSteps() missing description %q", step.Description)
		}
	}
}

// TestTable tests table rendering
func TestTable(t *testing.T) {
	headers := []string{"TARGET", "COLORS"}
	rows := [][]string{
		{StyleAccent.Render("intellij"), "10"},
		{"vscode", "12"},
	}

	result := Table(headers, rows)
	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), result)
	}

	for _, want := range []string{"TARGET", "COLORS", "intellij", "vscode", "12"} {
		if !strings.Contains(result, want) {
			t.Errorf("Table() missing %q", want)
		}
	}

	// Styled and plain rows line up.
	if lipgloss.Width(lines[2]) != lipgloss.Width(lines[3]) {
		t.Errorf("rows have different widths: %d vs %d", lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	}
}

// TestTable_EmptyHeaders tests table with no headers
func TestTable_EmptyHeaders(t *testing.T) {
	if result := Table(nil, [][]string{{"a"}}); result != "" {
		t.Errorf("Table() with empty headers = %q, want empty", result)
	}
}

// TestSection tests section rendering
func TestSection(t *testing.T) {
	result := Section("Targets", "intellij")
	if !strings.Contains(result, "Targets") || !strings.Contains(result, "intellij") {
		t.Errorf("Section() = %q", result)
	}
}
