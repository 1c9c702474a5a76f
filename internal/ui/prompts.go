package ui

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// DefaultStdio returns the process terminal (os.Stdin, os.Stdout, os.Stderr)
func DefaultStdio() terminal.Stdio {
	return terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// PromptDefault prompts with a default value. An empty answer keeps the
// default.
func PromptDefault(label, defaultValue string, stdio terminal.Stdio) (string, error) {
	var value string
	prompt := &survey.Input{
		Message: label,
		Default: defaultValue,
	}

	err := survey.AskOne(prompt, &value, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	if err != nil {
		return defaultValue, err
	}

	if value == "" {
		return defaultValue, nil
	}

	return value, nil
}

// PromptOptional prompts for optional input
func PromptOptional(label, help string, stdio terminal.Stdio) (string, error) {
	var value string
	prompt := &survey.Input{
		Message: label,
		Help:    help,
	}

	err := survey.AskOne(prompt, &value, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	return value, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(label string, defaultYes bool, stdio terminal.Stdio) (bool, error) {
	var value bool
	prompt := &survey.Confirm{
		Message: label,
		Default: defaultYes,
	}

	err := survey.AskOne(prompt, &value, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	return value, err
}

// PromptMultiSelect prompts for one or more selections from options.
// defaults are pre-selected.
func PromptMultiSelect(label string, options, defaults []string, stdio terminal.Stdio) ([]string, error) {
	var values []string
	prompt := &survey.MultiSelect{
		Message: label,
		Options: options,
	}
	if len(defaults) > 0 {
		prompt.Default = defaults
	}

	err := survey.AskOne(prompt, &values,
		survey.WithValidator(survey.MinItems(1)),
		survey.WithStdio(stdio.In, stdio.Out, stdio.Err),
	)
	return values, err
}
