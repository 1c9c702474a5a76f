package cmd

import (
	"fmt"

	"github.com/concrete-theme/concrete/internal/ui"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), GetVersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// GetVersionString returns the styled version, commit and build date
func GetVersionString() string {
	return fmt.Sprintf("%s %s\n%s %s\n%s %s",
		ui.StyleHeader.Render("concrete"), ui.StyleAccent.Render(Version),
		ui.StyleDim.Render("commit:"), GitCommit,
		ui.StyleDim.Render("built: "), BuildDate,
	)
}
