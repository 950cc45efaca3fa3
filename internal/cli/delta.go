package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vvka-141/sfdelta/internal/changes"
	"github.com/vvka-141/sfdelta/internal/changeset"
	"github.com/vvka-141/sfdelta/internal/config"
	"github.com/vvka-141/sfdelta/internal/manifest"
	"github.com/vvka-141/sfdelta/internal/project"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

var deltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "Generate a package descriptor from the files changed between two commits",
	Long: `Delta lists the files changed between two references, classifies those under
the default package directory into metadata components, merges the
hand-maintained manifest, and writes the result as a package.xml descriptor.

Custom labels are resolved per label: only labels touched by the diff are
included when the change source provides diff text.

The tree source ignores the revision range and lists every file of the
package directory, producing a descriptor for a full deployment.

Examples:
  # Local repository, explicit range
  sfdelta delta --from HEAD~1 --to HEAD

  # GitLab pipeline (range, server, project and token from CI variables)
  sfdelta delta --source gitlab

  # Full descriptor of the package directory
  sfdelta delta --source tree -o full.xml

  # Show the descriptor instead of writing it
  sfdelta delta --from main --debug`,
	Args: cobra.NoArgs,
	RunE: runDelta,
}

type deltaFlagValues struct {
	from, to, source         string
	output, manifest         string
	apiVersion               string
	gitlabServer, gitlabProj string
	gitlabToken              string
}

var deltaFlags deltaFlagValues

func init() {
	rootCmd.AddCommand(deltaCmd)

	f := deltaCmd.Flags()
	f.StringVar(&deltaFlags.from, "from", "", "Base revision (default $CI_COMMIT_BEFORE_SHA)")
	f.StringVar(&deltaFlags.to, "to", "HEAD", "Target revision (default $CI_COMMIT_SHA, then HEAD)")
	f.StringVar(&deltaFlags.source, "source", "", `Change source: "git", "gitlab" or "tree" (default from sfdelta.yaml, then git)`)
	f.StringVarP(&deltaFlags.output, "output", "o", "", "Descriptor output path (default "+sfdelta.DefaultOutputPath+")")
	f.StringVarP(&deltaFlags.manifest, "manifest", "m", "", "Manifest merged into the delta (default "+sfdelta.DefaultManifestPath+")")
	f.StringVar(&deltaFlags.apiVersion, "api-version", "", "Descriptor API version (default sourceApiVersion of the project)")
	addGitLabFlags(deltaCmd, &deltaFlags.gitlabServer, &deltaFlags.gitlabProj, &deltaFlags.gitlabToken)
}

func addGitLabFlags(cmd *cobra.Command, server, projectID, token *string) {
	cmd.Flags().StringVar(server, "gitlab-server", "", "GitLab host (default $CI_SERVER_HOST)")
	cmd.Flags().StringVar(projectID, "gitlab-project", "", "GitLab project ID (default $CI_PROJECT_ID)")
	cmd.Flags().StringVar(token, "gitlab-token", "", "GitLab access token (default $GITLAB_TOKEN)")
}

// rangeSettings are the revision range and change source settings shared
// by the commands that list changes.
func rangeSettings(cfg *config.ProjectConfig) []setting {
	return []setting{
		{key: "from", flag: "from", env: envFromRef},
		{key: "to", flag: "to", env: envToRef},
		{key: "source", flag: "source", file: cfg.Source},
		{key: "gitlab.server", flag: "gitlab-server", env: envGitLabServer, file: cfg.GitLab.Server},
		{key: "gitlab.project", flag: "gitlab-project", env: envGitLabProject, file: cfg.GitLab.ProjectID},
		{key: "gitlab.token", flag: "gitlab-token", env: envGitLabToken},
	}
}

func runDelta(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	v, err := resolveSettings(cmd, append(rangeSettings(a.cfg),
		setting{key: "output", flag: "output", file: a.cfg.Output},
		setting{key: "manifest", flag: "manifest", file: a.cfg.Manifest},
		setting{key: "api-version", flag: "api-version", file: a.cfg.APIVersion},
	)...)
	if err != nil {
		return err
	}

	proj, err := project.Load(a.fs, a.cfg.Project)
	if err != nil {
		return err
	}
	root, err := proj.DefaultPackageDirectory()
	if err != nil {
		return err
	}

	files, err := a.changedFiles(cmd, v, root)
	if err != nil {
		return err
	}

	cs, err := a.aggregate(files, root)
	if err != nil {
		return err
	}
	cs, err = a.mergeManifest(cs, v.GetString("manifest"))
	if err != nil {
		return err
	}

	apiVersion := firstNonEmpty(v.GetString("api-version"), proj.SourceAPIVersion)
	title := "Delta " + v.GetString("from") + ".." + v.GetString("to")
	if v.GetString("source") == config.SourceTree {
		title = "Package directory " + root
	}
	return a.renderAndWrite(cmd, title, cs, apiVersion, v.GetString("output"))
}

// changeSource builds the source named by the source setting. root is the
// package directory listed by the tree source.
func (a *app) changeSource(v *viper.Viper, root string) (sfdelta.ChangeSource, error) {
	switch name := v.GetString("source"); name {
	case config.SourceGit:
		return changes.NewGitSource(a.dir, a.logger), nil
	case config.SourceTree:
		return changes.NewTreeSource(os.DirFS(a.dir), root, a.logger), nil
	case config.SourceGitLab:
		return changes.NewGitLabSource(a.httpClient(), changes.GitLabOptions{
			Server:    v.GetString("gitlab.server"),
			ProjectID: v.GetString("gitlab.project"),
			Token:     v.GetString("gitlab.token"),
		}, a.logger), nil
	default:
		return nil, fmt.Errorf("unknown change source %q: %w", name, sfdelta.ErrInvalidConfig)
	}
}

func (a *app) changedFiles(cmd *cobra.Command, v *viper.Viper, root string) ([]sfdelta.ChangedFile, error) {
	from, to := strings.TrimSpace(v.GetString("from")), strings.TrimSpace(v.GetString("to"))
	if from == "" && v.GetString("source") != config.SourceTree {
		return nil, errRequired("base revision", "--from", envFromRef)
	}
	if to == "" {
		to = "HEAD"
	}

	source, err := a.changeSource(v, root)
	if err != nil {
		return nil, err
	}
	files, err := source.ChangedFiles(cmd.Context(), from, to)
	if err != nil {
		return nil, err
	}
	a.logger.Verbose("%d files changed between %s and %s", len(files), from, to)
	return files, nil
}

// aggregate classifies the files still present under root, minus ignored ones.
func (a *app) aggregate(files []sfdelta.ChangedFile, root string) (*changeset.ChangeSet, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		if f.Deleted {
			a.logger.Verbose("skipping deleted file %s", f.Path)
			continue
		}
		paths = append(paths, f.Path)
	}
	paths = project.FilterSource(paths, root, a.cfg.Ignore)
	a.logger.Verbose("%d changed files under %s", len(paths), root)

	return changeset.NewAggregator(a.classifier(), a.logger).Aggregate(paths, sfdelta.DiffIndex(files))
}

// mergeManifest merges the manifest at path into cs. A missing manifest is
// skipped with a warning.
func (a *app) mergeManifest(cs *changeset.ChangeSet, path string) (*changeset.ChangeSet, error) {
	if path == "" {
		return cs, nil
	}
	if !fileExists(a.fs, path) {
		a.logger.Warn("manifest %s not found, descriptor contains changed components only", path)
		return cs, nil
	}
	pkg, err := manifest.Load(a.fs, path)
	if err != nil {
		return nil, err
	}
	merged, skipped := manifest.Merge(cs, pkg, a.logger)
	if skipped > 0 {
		a.logger.Verbose("skipped %d wildcard members of %s", skipped, path)
	}
	return merged, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
