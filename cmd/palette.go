package cmd

import (
	"fmt"

	"github.com/concrete-theme/concrete/internal/ui"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the color table in the terminal",
	Long: `Show every color of the table as a terminal swatch, grouped and in
table order.

Examples:
  concrete palette                    # All colors
  concrete palette get accent.primary # One color value`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		colors, err := loadPalette(cfg)
		if err != nil {
			return err
		}

		source := cfg.Palette.File
		if flagPalette != "" {
			source = flagPalette
		}
		if source == "" {
			source = "built-in"
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.Header("🎨", "Color table"))
		fmt.Fprint(out, ui.Swatches(colors))
		fmt.Fprint(out, ui.InfoBox("Source", fmt.Sprintf("%d colors from %s", len(colors.Leaves()), source)))
		return nil
	},
}

var paletteGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print one color value by dotted path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		colors, err := loadPalette(cfg)
		if err != nil {
			return err
		}

		value, err := colors.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteGetCmd)
}
