package cmd

import (
	"fmt"
	"strings"

	"github.com/concrete-theme/concrete/internal/logger"
	"github.com/concrete-theme/concrete/internal/target"
	"github.com/concrete-theme/concrete/internal/ui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate [target...]",
	Short: "Generate theme packages",
	Long: `Generate a theme package for each target.

Every package is written to <out>/<target>: the target's template files are
copied first, then the theme document is written to theme/concrete.theme.json.
A color the theme needs but the table lacks aborts the run before anything
is written.

Examples:
  concrete generate                 # Configured targets into output.directory
  concrete generate intellij        # Only the IntelliJ package
  concrete generate --out build     # Write into ./build`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output directory (default: output.directory)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateOut != "" {
		cfg.Output.Directory = generateOut
	}
	if len(args) > 0 {
		cfg.Targets = args
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	colors, err := loadPalette(cfg)
	if err != nil {
		return err
	}

	targets, err := target.Resolve(cfg.Targets, cfg.Templates.Directory)
	if err != nil {
		return err
	}

	log := logger.WithField("run", uuid.NewString())
	log.Info("generating %s into %s", strings.Join(cfg.Targets, ", "), cfg.Output.Directory)

	results, err := target.PublishAll(targets, colors, cfg.Output.Directory, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s  %s %s\n",
			ui.StyleAccent.Render(r.Target),
			ui.StylePath.Render(r.ThemePath),
			ui.StyleDim.Render(fmt.Sprintf("(+%d files)", r.FilesCopied)),
		)
	}
	fmt.Fprint(out, ui.SuccessBox(
		fmt.Sprintf("Generated %d theme package(s)", len(results)),
		strings.TrimRight(b.String(), "\n"),
	))
	fmt.Fprint(out, ui.NextSteps([]ui.Step{
		{Command: "concrete preview --output palette.html", Description: "Check the colors in a browser"},
		{Command: "concrete check", Description: "Verify every target before publishing"},
	}))

	return nil
}
