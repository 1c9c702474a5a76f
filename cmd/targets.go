package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/concrete-theme/concrete/internal/embed"
	"github.com/concrete-theme/concrete/internal/target"
	"github.com/concrete-theme/concrete/internal/ui"
	"github.com/spf13/cobra"
)

var targetsRefs bool

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List available targets",
	Long: `List every registered target with the theme file it writes and the
number of colors its theme references. --refs prints the referenced color
paths as well.`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)

	targetsCmd.Flags().BoolVar(&targetsRefs, "refs", false, "Print the color paths each target references")
}

func runTargets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	headers := []string{"TARGET", "THEME FILE", "TEMPLATES", "COLORS"}
	var rows [][]string
	for _, name := range target.Names() {
		t, err := target.Lookup(name)
		if err != nil {
			return err
		}
		files, err := embed.CountFiles(t.Templates, ".")
		if err != nil {
			return fmt.Errorf("failed to read templates for %s: %w", name, err)
		}
		rows = append(rows, []string{
			ui.StyleAccent.Render(name),
			ui.StylePath.Render(t.ThemePath()),
			strconv.Itoa(files),
			strconv.Itoa(len(t.Theme.References())),
		})
	}

	fmt.Fprint(out, ui.Header("🎯", "Targets"))
	fmt.Fprint(out, ui.Table(headers, rows))

	if !targetsRefs {
		return nil
	}
	for _, name := range target.Names() {
		t, err := target.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprint(out, ui.Section(name, "  "+strings.Join(t.Theme.References(), "\n  ")))
	}
	return nil
}
