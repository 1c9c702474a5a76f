package preflight

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/concrete-theme/concrete/internal/config"
	"github.com/concrete-theme/concrete/internal/embed"
	"github.com/concrete-theme/concrete/internal/palette"
	"github.com/concrete-theme/concrete/internal/target"
	"github.com/concrete-theme/concrete/internal/theme"
	"github.com/concrete-theme/concrete/internal/ui"
)

// CheckResult represents the result of a preflight check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// RunAllChecks runs every check needed before generating themes.
// Target checks are skipped when the color table cannot be loaded.
func RunAllChecks(cfg *config.Config) []CheckResult {
	var results []CheckResult

	results = append(results, CheckConfig(cfg))

	paletteResult, colors := CheckPalette(cfg.Palette.File)
	results = append(results, paletteResult)

	targets, err := target.Resolve(cfg.Targets, cfg.Templates.Directory)
	if err != nil {
		results = append(results, CheckResult{Name: "Targets", Message: err.Error()})
	} else {
		for _, t := range targets {
			results = append(results, CheckTemplates(t))
			if colors != nil {
				results = append(results, CheckTarget(t, colors))
			}
		}
	}

	results = append(results, CheckOutputDir(cfg.Output.Directory))

	return results
}

// CheckConfig verifies the configuration is valid
func CheckConfig(cfg *config.Config) CheckResult {
	result := CheckResult{Name: "Configuration"}

	if err := cfg.Validate(); err != nil {
		result.Message = err.Error()
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%d target(s) configured", len(cfg.Targets))
	return result
}

// CheckPalette verifies the color table loads. The table is returned so
// later checks can use it; it is nil when the check fails.
func CheckPalette(path string) (CheckResult, *palette.Node) {
	result := CheckResult{Name: "Color table"}

	colors, err := palette.LoadOrDefault(path)
	if err != nil {
		result.Message = err.Error()
		return result, nil
	}

	source := path
	if source == "" {
		source = "built-in"
	}
	result.Passed = true
	result.Message = fmt.Sprintf("%d colors from %s", len(colors.Leaves()), source)
	return result, colors
}

// CheckTarget verifies every color the target's theme references exists
func CheckTarget(t *target.Target, colors *palette.Node) CheckResult {
	result := CheckResult{Name: t.Name + " theme"}

	if err := theme.Check(t.Theme, colors); err != nil {
		result.Message = err.Error()
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%d color references resolve", len(t.Theme.References()))
	return result
}

// CheckTemplates verifies the target has static files to copy
func CheckTemplates(t *target.Target) CheckResult {
	result := CheckResult{Name: t.Name + " templates"}

	count, err := embed.CountFiles(t.Templates, ".")
	if err != nil {
		result.Message = fmt.Sprintf("Cannot read template directory %s: %v", t.Source, err)
		return result
	}
	if count == 0 {
		result.Message = fmt.Sprintf("Template directory %s is empty", t.Source)
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%d template files", count)
	return result
}

// CheckOutputDir verifies the output directory is writable
func CheckOutputDir(dir string) CheckResult {
	result := CheckResult{Name: "Output directory"}

	// Create if doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		result.Message = fmt.Sprintf("Cannot create output directory: %v", err)
		return result
	}

	// Check if writable
	testFile := filepath.Join(dir, ".concrete-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Message = fmt.Sprintf("Output directory is not writable: %v", err)
		return result
	}
	_ = os.Remove(testFile) // nolint:errcheck

	result.Passed = true
	result.Message = fmt.Sprintf("Output directory is ready: %s", dir)
	return result
}

// PrintResults displays check results and reports whether all passed
func PrintResults(w io.Writer, results []CheckResult) bool {
	allPassed := true

	fmt.Fprint(w, ui.Header("🔍", "Preflight Checks"))

	for _, r := range results {
		var status string
		if r.Passed {
			status = ui.CheckMark("")
		} else {
			status = ui.StyleRed.Render("✗")
			allPassed = false
		}

		// Format: "  ✓ Color table: 42 colors from built-in"
		name := ui.StyleBold.Render(r.Name)
		message := ui.StyleDim.Render(r.Message)
		fmt.Fprintf(w, "  %s %s: %s\n", status, name, message)
	}

	fmt.Fprintln(w)
	return allPassed
}
