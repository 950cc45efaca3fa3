package changes

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// GitSource diffs two revisions of a local repository.
type GitSource struct {
	dir    string
	logger sfdelta.Logger
}

// NewGitSource creates a GitSource for the repository containing dir.
func NewGitSource(dir string, logger sfdelta.Logger) *GitSource {
	return &GitSource{dir: dir, logger: logger}
}

// ChangedFiles implements sfdelta.ChangeSource. from and to accept any
// revision go-git resolves: hashes, branches, tags, HEAD~n.
func (s *GitSource) ChangedFiles(ctx context.Context, from, to string) ([]sfdelta.ChangedFile, error) {
	repo, err := git.PlainOpenWithOptions(s.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w (%w)", s.dir, err, sfdelta.ErrChangeSource)
	}

	fromTree, err := treeAt(repo, from)
	if err != nil {
		return nil, err
	}
	toTree, err := treeAt(repo, to)
	if err != nil {
		return nil, err
	}

	diffs, err := object.DiffTreeWithOptions(ctx, fromTree, toTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s..%s: %w (%w)", from, to, err, sfdelta.ErrChangeSource)
	}

	files := make([]sfdelta.ChangedFile, 0, len(diffs))
	for _, change := range diffs {
		file, err := toChangedFile(ctx, change)
		if err != nil {
			return nil, fmt.Errorf("failed to render diff: %w (%w)", err, sfdelta.ErrChangeSource)
		}
		s.logger.Verbose("changed: %s", file.Path)
		files = append(files, file)
	}
	return files, nil
}

func treeAt(repo *git.Repository, rev string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w (%w)", rev, err, sfdelta.ErrChangeSource)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w (%w)", hash, err, sfdelta.ErrChangeSource)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load tree of %s: %w (%w)", hash, err, sfdelta.ErrChangeSource)
	}
	return tree, nil
}

func toChangedFile(ctx context.Context, change *object.Change) (sfdelta.ChangedFile, error) {
	action, err := change.Action()
	if err != nil {
		return sfdelta.ChangedFile{}, err
	}

	patch, err := change.PatchContext(ctx)
	if err != nil {
		return sfdelta.ChangedFile{}, err
	}
	var buf bytes.Buffer
	if err := patch.Encode(&buf); err != nil {
		return sfdelta.ChangedFile{}, err
	}

	if action == merkletrie.Delete {
		return sfdelta.ChangedFile{Path: change.From.Name, Diff: buf.String(), Deleted: true}, nil
	}
	return sfdelta.ChangedFile{Path: change.To.Name, Diff: buf.String()}, nil
}

var _ sfdelta.ChangeSource = (*GitSource)(nil)
