package cmd

import (
	"fmt"

	"github.com/concrete-theme/concrete/internal/logger"
	"github.com/concrete-theme/concrete/internal/preview"
	"github.com/concrete-theme/concrete/internal/target"
	"github.com/spf13/cobra"
)

var (
	previewOutput string
	previewTitle  string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the color table as an HTML page",
	Long: `Render every color of the table as a swatch on a standalone HTML page.

Groups become labelled nested lists in table order. The page is printed to
stdout unless --output (or preview.output) names a file.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Write the page to a file")
	previewCmd.Flags().StringVar(&previewTitle, "title", "", "Page title (default: preview.title)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	colors, err := loadPalette(cfg)
	if err != nil {
		return err
	}

	title := cfg.Preview.Title
	if previewTitle != "" {
		title = previewTitle
	}
	if title == "" {
		title = preview.DefaultTitle
	}
	page := preview.Page(colors, title)

	output := cfg.Preview.Output
	if previewOutput != "" {
		output = previewOutput
	}
	if output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), page)
		return err
	}

	if err := target.WriteFile(output, []byte(page), 0644); err != nil {
		return err
	}
	logger.Info("wrote %s (%d bytes)", output, len(page))
	return nil
}
