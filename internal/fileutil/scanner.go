package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Matcher finds files under a root directory by filename glob.
type Matcher struct {
	fs afero.Fs
}

// NewMatcher creates a Matcher backed by fs. A nil fs means the OS filesystem.
func NewMatcher(fs afero.Fs) *Matcher {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Matcher{fs: fs}
}

// Fs returns the filesystem the matcher reads from.
func (m *Matcher) Fs() afero.Fs {
	return m.fs
}

// Scan walks root recursively and returns the absolute paths of all files
// whose name matches pattern, in traversal order.
// If excludeHidden is true, names starting with "." or "~$" are dropped.
func (m *Matcher) Scan(root, pattern string, excludeHidden bool) ([]string, error) {
	g, err := CompileGlob(pattern)
	if err != nil {
		return nil, err
	}

	// Validate directory exists
	info, err := m.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
	}

	files := make([]string, 0)
	err = afero.Walk(m.fs, absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if info.IsDir() {
			return nil
		}

		// Symlinked directories are listed but not descended into
		if info.Mode()&os.ModeSymlink != 0 {
			if target, statErr := m.fs.Stat(path); statErr == nil && target.IsDir() {
				return nil
			}
		}

		name := info.Name()
		if !g.Match(name) {
			return nil
		}
		if excludeHidden && IsHidden(name) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return files, nil
}

// SizeOf returns the size of the file at path in bytes.
// The returned error wraps fs.ErrNotExist when the file is gone.
func (m *Matcher) SizeOf(path string) (int64, error) {
	info, err := m.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Size(), nil
}

// Canonicalize resolves dir to an absolute path. On the OS filesystem
// symlinks are evaluated too, so the result is the real location.
func (m *Matcher) Canonicalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if _, ok := m.fs.(*afero.OsFs); !ok {
		return filepath.Clean(abs), nil
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	return resolved, nil
}
