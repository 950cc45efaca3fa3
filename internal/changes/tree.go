package changes

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/vvka-141/sfdelta/internal/files/scanner"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// TreeSource reports every file below a directory as changed, producing a
// descriptor for a full deployment of that directory. It ignores the
// revision range.
type TreeSource struct {
	scanner *scanner.Scanner
	dir     string
	logger  sfdelta.Logger
}

// NewTreeSource creates a TreeSource listing dir within fsys.
func NewTreeSource(fsys fs.FS, dir string, logger sfdelta.Logger) *TreeSource {
	return &TreeSource{scanner: scanner.NewScanner(fsys), dir: dir, logger: logger}
}

// ChangedFiles implements sfdelta.ChangeSource.
func (s *TreeSource) ChangedFiles(ctx context.Context, _, _ string) ([]sfdelta.ChangedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paths, err := s.scanner.ScanDirectory(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w (%w)", s.dir, err, sfdelta.ErrChangeSource)
	}
	s.logger.Verbose("%d files below %s", len(paths), s.dir)

	files := make([]sfdelta.ChangedFile, len(paths))
	for i, p := range paths {
		files[i] = sfdelta.ChangedFile{Path: p}
	}
	return files, nil
}

var _ sfdelta.ChangeSource = (*TreeSource)(nil)
