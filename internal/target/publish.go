package target

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/concrete-theme/concrete/internal/logger"
	"github.com/concrete-theme/concrete/internal/palette"
	"github.com/concrete-theme/concrete/internal/theme"
)

// Result describes what a publish run wrote
type Result struct {
	Target      string
	OutputDir   string
	ThemePath   string
	FilesCopied int
}

// Publish writes the package for t into <baseDir>/<t.Name>:
//
//  1. create the output directory
//  2. copy the static template directory over it
//  3. ensure the theme directory exists
//  4. write the generated theme file
//
// The theme is built before anything touches the disk, so a missing color
// leaves the output untouched. The I/O steps are not transactional; after a
// failure the output is partial and the run has to be repeated.
func Publish(t *Target, colors *palette.Node, baseDir string, log *logger.Logger) (*Result, error) {
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithField("target", t.Name)

	doc, err := theme.Build(t.Theme, colors)
	if err != nil {
		return nil, err
	}
	data, err := theme.Encode(doc)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(baseDir, t.Name)
	log.Debug("creating %s", outputDir)
	if err := EnsureDir(outputDir); err != nil {
		return nil, err
	}

	copied, err := CopyDir(t.Templates, t.Source, outputDir)
	if err != nil {
		return nil, fmt.Errorf("copy templates for %s: %w", t.Name, err)
	}
	log.Debug("copied %d template files", copied)

	themePath := filepath.Join(outputDir, filepath.FromSlash(t.ThemePath()))
	if err := EnsureDir(filepath.Join(outputDir, filepath.FromSlash(t.ThemeDir()))); err != nil {
		return nil, err
	}
	if err := WriteFile(themePath, data, 0644); err != nil {
		return nil, err
	}
	log.Info("wrote %s (%d bytes)", themePath, len(data))

	return &Result{
		Target:      t.Name,
		OutputDir:   outputDir,
		ThemePath:   themePath,
		FilesCopied: copied,
	}, nil
}

// PublishAll publishes each target in order and stops at the first error
func PublishAll(targets []*Target, colors *palette.Node, baseDir string, log *logger.Logger) ([]*Result, error) {
	results := make([]*Result, 0, len(targets))
	for _, t := range targets {
		res, err := Publish(t, colors, baseDir, log)
		if err != nil {
			return results, fmt.Errorf("publish %s: %w", t.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// ThemeDir returns the directory the theme file lives in, relative to the
// target output directory.
func (t *Target) ThemeDir() string {
	return path.Dir(t.ThemePath())
}
