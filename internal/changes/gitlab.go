package changes

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Getter fetches and decodes a JSON document. *httpclient.Client
// satisfies it.
type Getter interface {
	GetJSON(ctx context.Context, url string, headers map[string]string, target any) error
}

// GitLabSource lists changes through the GitLab repository compare API.
type GitLabSource struct {
	getter    Getter
	server    string
	projectID string
	token     string
	logger    sfdelta.Logger
}

// GitLabOptions identifies the project and credentials.
type GitLabOptions struct {
	// Server is the GitLab host (CI_SERVER_HOST). A value with a scheme is
	// used as the base URL as-is.
	Server    string
	ProjectID string
	Token     string
}

// compareResponse is the part of the compare API response this package reads.
type compareResponse struct {
	Diffs []struct {
		OldPath     string `json:"old_path"`
		NewPath     string `json:"new_path"`
		Diff        string `json:"diff"`
		NewFile     bool   `json:"new_file"`
		RenamedFile bool   `json:"renamed_file"`
		DeletedFile bool   `json:"deleted_file"`
	} `json:"diffs"`
}

// NewGitLabSource creates a GitLabSource.
func NewGitLabSource(getter Getter, opts GitLabOptions, logger sfdelta.Logger) *GitLabSource {
	return &GitLabSource{
		getter:    getter,
		server:    strings.TrimRight(opts.Server, "/"),
		projectID: opts.ProjectID,
		token:     opts.Token,
		logger:    logger,
	}
}

// ChangedFiles implements sfdelta.ChangeSource.
func (s *GitLabSource) ChangedFiles(ctx context.Context, from, to string) ([]sfdelta.ChangedFile, error) {
	if s.server == "" || s.projectID == "" {
		return nil, fmt.Errorf("GitLab server and project ID are required: %w", sfdelta.ErrInvalidConfig)
	}
	if s.token == "" {
		return nil, fmt.Errorf("GitLab access token is required: %w", sfdelta.ErrInvalidConfig)
	}

	var resp compareResponse
	if err := s.getter.GetJSON(ctx, s.compareURL(from, to), map[string]string{"PRIVATE-TOKEN": s.token}, &resp); err != nil {
		return nil, fmt.Errorf("failed to compare %s..%s: %w (%w)", from, to, err, sfdelta.ErrChangeSource)
	}

	files := make([]sfdelta.ChangedFile, 0, len(resp.Diffs))
	for _, d := range resp.Diffs {
		s.logger.Verbose("changed: %s", d.NewPath)
		files = append(files, sfdelta.ChangedFile{
			Path:    d.NewPath,
			Diff:    d.Diff,
			Deleted: d.DeletedFile,
		})
	}
	return files, nil
}

func (s *GitLabSource) compareURL(from, to string) string {
	base := s.server
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	return fmt.Sprintf("%s/api/v4/projects/%s/repository/compare?%s", base, url.PathEscape(s.projectID), q.Encode())
}

var _ sfdelta.ChangeSource = (*GitLabSource)(nil)
