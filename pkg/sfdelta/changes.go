package sfdelta

import "context"

// ChangedFile is one entry of the changed-file list between two references.
type ChangedFile struct {
	// Path is the repository-relative, forward-slash path of the file at the newer reference.
	Path string

	// Diff is the unified diff text of the file, empty when the source has none.
	Diff string

	// Deleted reports whether the file no longer exists at the newer reference.
	Deleted bool
}

// ChangeSource lists the files changed between two source-control references.
//
// Implementations:
//   - changes.GitSource: diffs two revisions of a local repository
//   - changes.GitLabSource: queries the GitLab repository compare API
type ChangeSource interface {
	ChangedFiles(ctx context.Context, from, to string) ([]ChangedFile, error)
}

// DiffIndex returns the per-file diff text of files keyed by path.
// Files without diff text are omitted.
func DiffIndex(files []ChangedFile) map[string]string {
	idx := make(map[string]string, len(files))
	for _, f := range files {
		if f.Diff != "" {
			idx[f.Path] = f.Diff
		}
	}
	return idx
}
