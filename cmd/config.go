package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concrete-theme/concrete/internal/config"
	"github.com/concrete-theme/concrete/internal/palette"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or manage configuration",
	Long: `View and manage Concrete configuration.

Examples:
  concrete config show        # Display current configuration
  concrete config validate    # Validate the configuration file
  concrete config path        # Show config file paths`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, found, err := config.LoadOrDefault(flagConfig)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Current Concrete Configuration:")
		fmt.Fprintln(out, "===============================")
		fmt.Fprintln(out)

		// Marshal to YAML for display
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to format config: %w", err)
		}

		fmt.Fprintln(out, string(data))

		// Show config source
		if found {
			fmt.Fprintf(out, "Source: %s\n", flagConfig)
		} else {
			fmt.Fprintf(out, "Source: defaults (no %s found)\n", flagConfig)
		}

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validating configuration...")
		fmt.Fprintln(out)

		hasErrors := false

		cfg, found, err := config.LoadOrDefault(flagConfig)
		switch {
		case err != nil:
			fmt.Fprintf(out, "  %s: INVALID - %s\n", flagConfig, err)
			hasErrors = true
		case !found:
			fmt.Fprintf(out, "  %s: not found (using defaults)\n", flagConfig)
		default:
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(out, "  %s: INVALID - %s\n", flagConfig, err)
				hasErrors = true
			} else {
				fmt.Fprintf(out, "  %s: OK\n", flagConfig)
			}
		}

		// Check the color table it points to
		if cfg != nil && cfg.Palette.File != "" {
			if _, err := palette.Load(cfg.Palette.File); err != nil {
				fmt.Fprintf(out, "  %s: INVALID - %s\n", cfg.Palette.File, err)
				hasErrors = true
			} else {
				fmt.Fprintf(out, "  %s: OK\n", cfg.Palette.File)
			}
		}

		fmt.Fprintln(out)

		if hasErrors {
			return fmt.Errorf("configuration validation failed")
		}

		fmt.Fprintln(out, "Configuration is valid!")
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file paths",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		cwd, _ := os.Getwd()
		configPath := flagConfig
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(cwd, configPath)
		}

		fmt.Fprintln(out, "Configuration file paths:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Working directory: %s\n", cwd)
		fmt.Fprintf(out, "  Config:            %s\n", configPath)
		fmt.Fprintln(out)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configPathCmd)
}
