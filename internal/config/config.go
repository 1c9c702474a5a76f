package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/concrete-theme/concrete/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "concrete.yaml"

// Config represents the concrete configuration
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Targets   []string        `yaml:"targets"`
	Palette   PaletteConfig   `yaml:"palette"`
	Preview   PreviewConfig   `yaml:"preview"`
	Templates TemplatesConfig `yaml:"templates,omitempty"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// OutputConfig contains where generated packages are written
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// PaletteConfig selects the color table
type PaletteConfig struct {
	File string `yaml:"file,omitempty"` // YAML color table; empty uses the built-in one
}

// PreviewConfig contains HTML preview settings
type PreviewConfig struct {
	Title  string `yaml:"title"`
	Output string `yaml:"output,omitempty"` // empty writes to stdout
}

// TemplatesConfig overrides the embedded static template directories
type TemplatesConfig struct {
	Directory string `yaml:"directory,omitempty"` // contains one sub directory per target
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Directory: "dist",
		},
		Targets: []string{"intellij"},
		Preview: PreviewConfig{
			Title: "Concrete Dark Palette",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and parses a concrete.yaml file. Missing keys keep their
// default values.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when the file does not
// exist. A file that exists but cannot be parsed is still an error.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	return nil, false, err
}

// Save writes the config to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory is required")
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("targets must name at least one target")
	}

	seen := make(map[string]bool, len(c.Targets))
	for _, name := range c.Targets {
		if name == "" {
			return fmt.Errorf("targets must not contain empty names")
		}
		if seen[name] {
			return fmt.Errorf("target %q is listed twice", name)
		}
		seen[name] = true
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	return nil
}
