//go:build !windows
// +build !windows

package ui

import (
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/concrete-theme/concrete/internal/testutil"
)

// TestPromptDefault tests prompt with default value
func TestPromptDefault(t *testing.T) {
	testutil.RunPromptTest(t,
		func(c testutil.ExpectConsole) {
			c.ExpectString("Output directory")
			c.SendLine("") // Accept default
			c.ExpectEOF()
		},
		func(stdio terminal.Stdio) error {
			result, err := PromptDefault("Output directory", "dist", stdio)
			if err != nil {
				return err
			}
			if result != "dist" {
				t.Errorf("expected 'dist', got %q", result)
			}
			return nil
		},
	)
}

// TestPromptDefault_Override tests prompt with default value when user provides input
func TestPromptDefault_Override(t *testing.T) {
	testutil.RunPromptTest(t,
		func(c testutil.ExpectConsole) {
			c.ExpectString("Output directory")
			c.SendLine("build/themes")
			c.ExpectEOF()
		},
		func(stdio terminal.Stdio) error {
			result, err := PromptDefault("Output directory", "dist", stdio)
			if err != nil {
				return err
			}
			if result != "build/themes" {
				t.Errorf("expected 'build/themes', got %q", result)
			}
			return nil
		},
	)
}

// TestPromptOptional_Empty tests optional input when user enters nothing
func TestPromptOptional_Empty(t *testing.T) {
	testutil.RunPromptTest(t,
		func(c testutil.ExpectConsole) {
			c.ExpectString("Palette file")
			c.SendLine("")
			c.ExpectEOF()
		},
		func(stdio terminal.Stdio) error {
			result, err := PromptOptional("Palette file", "", stdio)
			if err != nil {
				return err
			}
			if result != "" {
				t.Errorf("expected empty string, got %q", result)
			}
			return nil
		},
	)
}

// TestPromptConfirm_Yes tests confirm prompt with yes answer
func TestPromptConfirm_Yes(t *testing.T) {
	testutil.RunPromptTest(t,
		func(c testutil.ExpectConsole) {
			c.ExpectString("Overwrite?")
			c.SendLine("y")
			c.ExpectEOF()
		},
		func(stdio terminal.Stdio) error {
			result, err := PromptConfirm("Overwrite?", false, stdio)
			if err != nil {
				return err
			}
			if !result {
				t.Error("expected true, got false")
			}
			return nil
		},
	)
}

// TestPromptConfirm_DefaultNo tests confirm prompt accepting default no
func TestPromptConfirm_DefaultNo(t *testing.T) {
	testutil.RunPromptTest(t,
		func(c testutil.ExpectConsole) {
			c.ExpectString("Overwrite?")
			c.SendLine("") // Accept default
			c.ExpectEOF()
		},
		func(stdio terminal.Stdio) error {
			result, err := PromptConfirm("Overwrite?", false, stdio)
			if err != nil {
				return err
			}
			if result {
				t.Error("expected false (default), got true")
			}
			return nil
		},
	)
}

// TestPromptMultiSelect tests multiselect prompt
func TestPromptMultiSelect(t *testing.T) {
	testutil.RunPromptTest(t,
		func(c testutil.ExpectConsole) {
			c.ExpectString("Targets:")
			c.Send(" ")    // Toggle first option
			c.SendLine("") // Confirm selection
			c.ExpectEOF()
		},
		func(stdio terminal.Stdio) error {
			result, err := PromptMultiSelect("Targets:", []string{"intellij", "vscode"}, nil, stdio)
			if err != nil {
				return err
			}
			if len(result) != 1 || result[0] != "intellij" {
				t.Errorf("expected ['intellij'], got %v", result)
			}
			return nil
		},
	)
}

// TestPromptMultiSelect_Defaults tests multiselect keeping the preselected options
func TestPromptMultiSelect_Defaults(t *testing.T) {
	testutil.RunPromptTest(t,
		func(c testutil.ExpectConsole) {
			c.ExpectString("Targets:")
			c.SendLine("") // Keep defaults
			c.ExpectEOF()
		},
		func(stdio terminal.Stdio) error {
			result, err := PromptMultiSelect("Targets:", []string{"intellij", "vscode"}, []string{"vscode"}, stdio)
			if err != nil {
				return err
			}
			if len(result) != 1 || result[0] != "vscode" {
				t.Errorf("expected ['vscode'], got %v", result)
			}
			return nil
		},
	)
}
