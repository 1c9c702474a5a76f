package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/concrete-theme/concrete/internal/config"
	"github.com/concrete-theme/concrete/internal/palette"
	"github.com/concrete-theme/concrete/internal/target"
	"github.com/concrete-theme/concrete/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagNonInteractive bool
	flagForce          bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create concrete.yaml with an interactive wizard",
	Long: `Create a concrete.yaml configuration with an interactive wizard.

The wizard asks for:
  1. The output directory for generated packages
  2. The targets to generate
  3. An optional color table file (empty uses the built-in one)
  4. The preview page title

For automation, use --no-interactive to write the defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&flagNonInteractive, "no-interactive", false, "Skip interactive prompts, write defaults")
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	stdio := ui.DefaultStdio()

	if fileExists(flagConfig) && !flagForce {
		if flagNonInteractive {
			return fmt.Errorf("%s already exists. Use --force to overwrite", flagConfig)
		}
		overwrite, err := ui.PromptConfirm(fmt.Sprintf("%s already exists. Overwrite?", flagConfig), false, stdio)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, ui.Warning("Aborted, nothing written"))
			return nil
		}
	}

	fmt.Fprint(out, ui.Header("🎨", "Welcome to Concrete"))
	fmt.Fprintf(out, "%s\n\n", ui.StyleDim.Render("Editor themes from one color table"))

	cfg := config.Default()
	if !flagNonInteractive {
		if err := initWizard(cfg, stdio); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(flagConfig); err != nil {
		return err
	}

	fmt.Fprint(out, ui.ProgressLine("Wrote "+flagConfig, true, ""))
	fmt.Fprint(out, ui.NextSteps([]ui.Step{
		{Command: "concrete check", Description: "Verify the setup"},
		{Command: "concrete generate", Description: "Write theme packages"},
	}))
	return nil
}

// initWizard fills cfg from prompts on stdio
func initWizard(cfg *config.Config, stdio terminal.Stdio) error {
	outputDir, err := ui.PromptDefault("Output directory", cfg.Output.Directory, stdio)
	if err != nil {
		return err
	}
	cfg.Output.Directory = outputDir

	targets, err := ui.PromptMultiSelect("Targets:", target.Names(), cfg.Targets, stdio)
	if err != nil {
		return err
	}
	cfg.Targets = targets

	paletteFile, err := ui.PromptOptional("Palette file", "YAML color table; leave empty for the built-in one", stdio)
	if err != nil {
		return err
	}
	if paletteFile != "" {
		if _, err := palette.Load(paletteFile); err != nil {
			return fmt.Errorf("invalid palette file: %w", err)
		}
		cfg.Palette.File = paletteFile
	}

	title, err := ui.PromptDefault("Preview title", cfg.Preview.Title, stdio)
	if err != nil {
		return err
	}
	cfg.Preview.Title = title

	return nil
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
