package embed

import (
	"embed"
	"io/fs"
	"path"
	"sort"
)

//go:embed all:files
var Files embed.FS

const (
	themesDir    = "themes"
	templatesDir = "templates"
)

// GetFile reads a file from the embedded filesystem
func GetFile(name string) ([]byte, error) {
	return Files.ReadFile(path.Join("files", name))
}

// Sub returns the embedded directory dir as its own filesystem
func Sub(dir string) (fs.FS, error) {
	return fs.Sub(Files, path.Join("files", dir))
}

// ThemeTemplate reads the theme template for a target (themes/<target>.yaml)
func ThemeTemplate(target string) ([]byte, error) {
	return GetFile(path.Join(themesDir, target+".yaml"))
}

// TemplateDir returns the static template directory for a target
func TemplateDir(target string) (fs.FS, error) {
	dir := path.Join(templatesDir, target)
	if _, err := fs.Stat(Files, path.Join("files", dir)); err != nil {
		return nil, err
	}
	return Sub(dir)
}

// Targets lists every target that has a theme template embedded
func Targets() ([]string, error) {
	names, err := listFiles(themesDir)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		names[i] = name[:len(name)-len(path.Ext(name))]
	}
	return names, nil
}

// CountFiles counts the regular files below root in fsys
func CountFiles(fsys fs.FS, root string) (int, error) {
	count := 0
	err := fs.WalkDir(fsys, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count, err
}

func listFiles(dir string) ([]string, error) {
	entries, err := fs.ReadDir(Files, path.Join("files", dir))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
