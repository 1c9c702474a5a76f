package target

import (
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents. It succeeds when dir
// already exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// CopyDir copies every file in src into targetDir, keeping the directory
// layout and overwriting files that already exist. It returns the number
// of files written. source names where src lives and prefixes the path of
// read errors.
func CopyDir(src fs.FS, source, targetDir string) (int, error) {
	copied := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &IOError{Op: "read", Path: sourcePath(source, path), Err: err}
		}

		targetPath := filepath.Join(targetDir, filepath.FromSlash(path))

		if d.IsDir() {
			return EnsureDir(targetPath)
		}

		content, err := fs.ReadFile(src, path)
		if err != nil {
			return &IOError{Op: "read", Path: sourcePath(source, path), Err: err}
		}

		mode := fs.FileMode(0644)
		if info, err := d.Info(); err == nil && info.Mode().Perm()&0111 != 0 {
			mode = 0755
		}

		if err := WriteFile(targetPath, content, mode); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

// WriteFile writes data to path, replacing any previous content
func WriteFile(path string, data []byte, mode fs.FileMode) error {
	if err := os.WriteFile(path, data, mode); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// sourcePath joins a slash separated fs.FS path onto the source it was
// read from
func sourcePath(source, rel string) string {
	if source == "" {
		return rel
	}
	return filepath.Join(source, filepath.FromSlash(rel))
}
