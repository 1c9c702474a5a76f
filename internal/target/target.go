// Package target publishes theme packages for individual editors.
//
// A Target pairs a static template directory with a theme template. New
// editors are supported by registering another Target; the publish steps
// are shared by all of them.
package target

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/concrete-theme/concrete/internal/embed"
	"github.com/concrete-theme/concrete/internal/theme"
)

// DefaultThemeFile is where the generated theme is written, relative to the
// target's output directory.
const DefaultThemeFile = "theme/concrete.theme.json"

// Target describes one editor integration
type Target struct {
	Name      string
	Templates fs.FS
	Source    string // where Templates is read from, used in error messages
	Theme     *theme.Template
	ThemeFile string
}

// ThemePath returns the slash separated theme file path
func (t *Target) ThemePath() string {
	if t.ThemeFile == "" {
		return DefaultThemeFile
	}
	return t.ThemeFile
}

// WithTemplateDir returns a copy of t reading its static files from dir
func (t *Target) WithTemplateDir(dir string) *Target {
	c := *t
	c.Templates = os.DirFS(dir)
	c.Source = dir
	return &c
}

// FromEmbedded builds a target from the embedded assets
// themes/<name>.yaml and templates/<name>/.
func FromEmbedded(name string) (*Target, error) {
	data, err := embed.ThemeTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("no theme template for %s: %w", name, err)
	}
	tpl, err := theme.ParseTemplate(name, data)
	if err != nil {
		return nil, err
	}

	templates, err := embed.TemplateDir(name)
	if err != nil {
		return nil, fmt.Errorf("no template directory for %s: %w", name, err)
	}

	return &Target{
		Name:      name,
		Templates: templates,
		Source:    "embedded:" + path.Join("templates", name),
		Theme:     tpl,
		ThemeFile: DefaultThemeFile,
	}, nil
}

var (
	mu       sync.RWMutex
	registry = make(map[string]*Target)
)

// Register adds t to the registry, replacing a target with the same name
func Register(t *Target) {
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t
}

// Lookup returns the registered target with the given name
func Lookup(name string) (*Target, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown target %q", name)
	}
	return t, nil
}

// Names lists registered targets alphabetically
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up each name. When templateRoot is set, every target reads
// its static files from <templateRoot>/<name> instead of the embedded copy.
func Resolve(names []string, templateRoot string) ([]*Target, error) {
	targets := make([]*Target, 0, len(names))
	for _, name := range names {
		t, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		if templateRoot != "" {
			t = t.WithTemplateDir(filepath.Join(templateRoot, name))
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func init() {
	names, err := embed.Targets()
	if err != nil {
		panic(fmt.Sprintf("reading embedded targets: %v", err))
	}
	for _, name := range names {
		t, err := FromEmbedded(name)
		if err != nil {
			panic(fmt.Sprintf("loading embedded target %s: %v", name, err))
		}
		Register(t)
	}
}
