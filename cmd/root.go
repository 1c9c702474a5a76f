package cmd

import (
	"fmt"
	"os"

	"github.com/concrete-theme/concrete/internal/config"
	"github.com/concrete-theme/concrete/internal/logger"
	"github.com/concrete-theme/concrete/internal/palette"
	"github.com/concrete-theme/concrete/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagPalette string
	flagVerbose bool
	flagLogJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "concrete",
	Short: "🎨 Concrete - editor themes from one color table",
	Long: `Concrete - Generate editor themes and palette previews from one color table.

Core Commands:
  generate [target...]   Write theme packages (default: configured targets)
  preview                Render the color table as an HTML page
  palette                Show the color table in the terminal

Setup:
  init                   Create concrete.yaml with an interactive wizard
  check                  Verify configuration, colors and targets`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command and prints a failure as an error box
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.ErrorBox("", err.Error()))
	}
	return err
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Color table YAML file (overrides palette.file)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Log as JSON")
}

// setupLogging applies the logging section of the config and the global
// flags to the default logger. A config that fails to load is reported by
// the command itself, so logging falls back to defaults here.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := "info"
	jsonOutput := flagLogJSON

	if cfg, _, err := config.LoadOrDefault(flagConfig); err == nil {
		if cfg.Logging.Level != "" {
			level = cfg.Logging.Level
		}
		jsonOutput = jsonOutput || cfg.Logging.JSON
	}
	if flagVerbose {
		level = "debug"
	}

	if err := logger.Configure(level, jsonOutput); err != nil {
		logger.Warn("%v, using info", err)
		return logger.Configure("info", jsonOutput)
	}
	return nil
}

// loadConfig reads the config file named by --config, falling back to
// defaults when it does not exist
func loadConfig() (*config.Config, error) {
	cfg, found, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return nil, err
	}
	if found {
		logger.Debug("loaded config from %s", flagConfig)
	} else {
		logger.Debug("no %s found, using defaults", flagConfig)
	}
	return cfg, nil
}

// loadPalette loads the color table named by --palette or the config
func loadPalette(cfg *config.Config) (*palette.Node, error) {
	path := cfg.Palette.File
	if flagPalette != "" {
		path = flagPalette
	}

	colors, err := palette.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = "built-in"
	}
	logger.Debug("loaded %d colors from %s", len(colors.Leaves()), path)
	return colors, nil
}
