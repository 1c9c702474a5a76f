package cmd

import (
	"fmt"

	"github.com/concrete-theme/concrete/internal/preflight"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration, colors and targets",
	Long: `Run the preflight checks generate depends on:

  - the configuration is valid
  - the color table loads
  - each target has template files
  - every color each target references exists
  - the output directory is writable`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if flagPalette != "" {
			cfg.Palette.File = flagPalette
		}

		results := preflight.RunAllChecks(cfg)
		if !preflight.PrintResults(cmd.OutOrStdout(), results) {
			return fmt.Errorf("preflight checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
