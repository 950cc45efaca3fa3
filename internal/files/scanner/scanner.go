package scanner

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Scanner walks a file tree.
// Scanner is safe for concurrent use as long as the underlying fs.FS is.
type Scanner struct {
	fsys fs.FS
}

// NewScanner creates a Scanner over fsys, typically os.DirFS of the
// repository root.
// Panics if fsys is nil.
func NewScanner(fsys fs.FS) *Scanner {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	return &Scanner{fsys: fsys}
}

// ScanDirectory returns the forward-slash paths of the regular files
// below dir, in lexical order, relative to the scanner root.
func (s *Scanner) ScanDirectory(dir string) ([]string, error) {
	dir = path.Clean(strings.TrimPrefix(dir, "/"))

	var files []string
	err := fs.WalkDir(s.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %w", p, err)
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
