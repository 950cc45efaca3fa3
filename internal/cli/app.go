package cli

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/changeset"
	"github.com/vvka-141/sfdelta/internal/classifier"
	"github.com/vvka-141/sfdelta/internal/config"
	"github.com/vvka-141/sfdelta/internal/files/filesystem"
	"github.com/vvka-141/sfdelta/internal/httpclient"
	"github.com/vvka-141/sfdelta/internal/labels"
	"github.com/vvka-141/sfdelta/internal/logging"
	"github.com/vvka-141/sfdelta/internal/sfcli"
	"github.com/vvka-141/sfdelta/internal/tui"
	"github.com/vvka-141/sfdelta/internal/ui"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// app carries the dependencies shared by the commands of one invocation.
type app struct {
	dir     string
	verbose bool
	debug   bool
	logger  sfdelta.Logger
	cfg     *config.ProjectConfig
	fs      *filesystem.OSFileSystem
}

func newApp() (*app, error) {
	dir, err := filepath.Abs(rootFlags.dir)
	if err != nil {
		return nil, fmt.Errorf("invalid --dir %q: %w", rootFlags.dir, err)
	}
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLogger(rootFlags.verbose)
	logger.Verbose("repository root: %s", dir)

	return &app{
		dir:     dir,
		verbose: rootFlags.verbose,
		debug:   rootFlags.debug,
		logger:  logger,
		cfg:     cfg,
		fs:      filesystem.NewOSFileSystem(dir),
	}, nil
}

// classifier returns a path classifier resolving label bundles from disk.
func (a *app) classifier() *classifier.Classifier {
	extractor := labels.NewExtractor(a.fs, a.logger)
	return classifier.New(a.logger).Register("CustomLabels", extractor)
}

func (a *app) httpClient() *httpclient.Client {
	return httpclient.New(httpclient.Config{UserAgent: "sfdelta/" + version}, a.logger)
}

// newExecRunner builds the runner that executes Salesforce CLI commands.
var newExecRunner = func(dir string, logger sfdelta.Logger) sfdelta.Runner {
	r := sfcli.NewExecRunner(logger)
	r.Dir = dir
	return r
}

// newApprover builds the deployment approver: a countdown when forced or
// when nobody can answer a prompt, otherwise an alias confirmation prompt.
var newApprover = func(force, verbose bool) sfdelta.Approver {
	if force || !tui.IsInteractive() {
		return ui.NewForcedApprover(verbose)
	}
	return ui.NewInteractiveApprover(verbose)
}

// runner returns the command runner, printing instead of running in debug mode.
func (a *app) runner(cmd *cobra.Command) sfdelta.Runner {
	if a.debug {
		return sfcli.NewDryRunner(cmd.OutOrStdout())
	}
	return newExecRunner(a.dir, a.logger)
}

// writeDescriptor writes content to path below the repository root, or
// prints it in debug mode.
func (a *app) writeDescriptor(cmd *cobra.Command, path string, content []byte) error {
	if a.debug {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}
	if err := a.fs.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.logger.Info("wrote %s", path)
	return nil
}

// summarize writes the descriptor overview to stderr.
func (a *app) summarize(cmd *cobra.Command, title string, cs *changeset.ChangeSet) {
	rows := make([]tui.SummaryRow, 0, cs.Len())
	for _, t := range cs.Types() {
		rows = append(rows, tui.SummaryRow{Type: t, Members: cs.Members(t)})
	}
	fmt.Fprint(cmd.ErrOrStderr(), tui.RenderSummary(title, rows, a.verbose))
}

func fileExists(fs filesystem.Provider, path string) bool {
	_, err := fs.Stat(path)
	return !errors.Is(err, iofs.ErrNotExist)
}
