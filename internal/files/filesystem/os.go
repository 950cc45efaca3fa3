package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements Provider for the OS filesystem.
// Relative paths are resolved against Root; absolute paths are used as-is.
type OSFileSystem struct {
	Root string
}

// NewOSFileSystem creates an OS filesystem provider rooted at root.
// An empty root means the current working directory.
func NewOSFileSystem(root string) *OSFileSystem {
	if root == "" {
		root = "."
	}
	return &OSFileSystem{Root: root}
}

func (p *OSFileSystem) resolve(path string) string {
	native := filepath.FromSlash(path)
	if filepath.IsAbs(native) {
		return native
	}
	return filepath.Join(p.Root, native)
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(p.resolve(path))
}

func (p *OSFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	target := p.resolve(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.WriteFile(target, data, perm)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(p.resolve(path))
}

var _ Provider = (*OSFileSystem)(nil)
