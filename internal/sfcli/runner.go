package sfcli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Quieter is implemented by runners that can drop a command's standard
// output, for commands whose output carries credentials.
type Quieter interface {
	Quiet() sfdelta.Runner
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
	logger sfdelta.Logger
}

// NewExecRunner creates an ExecRunner streaming to the process's own
// stdout and stderr.
func NewExecRunner(logger sfdelta.Logger) *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr, logger: logger}
}

// Run implements sfdelta.Runner.
func (r *ExecRunner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("empty command: %w", sfdelta.ErrCommandFailed)
	}
	r.logger.Info("%s", Quote(args))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdin = nil
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w (%w)", args[0], err, sfdelta.ErrCommandFailed)
	}
	return nil
}

// Quiet returns a copy of r that discards standard output.
func (r *ExecRunner) Quiet() sfdelta.Runner {
	clone := *r
	clone.Stdout = io.Discard
	return &clone
}

// DryRunner prints each command instead of running it.
type DryRunner struct {
	w io.Writer
}

// NewDryRunner creates a DryRunner printing to w.
func NewDryRunner(w io.Writer) *DryRunner {
	return &DryRunner{w: w}
}

// Run implements sfdelta.Runner.
func (r *DryRunner) Run(_ context.Context, args []string) error {
	_, err := fmt.Fprintln(r.w, Quote(args))
	return err
}

// Quote renders args as a single bash command line.
func Quote(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		q, err := syntax.Quote(a, syntax.LangBash)
		if err != nil {
			q = fmt.Sprintf("%q", a)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

var (
	_ sfdelta.Runner = (*ExecRunner)(nil)
	_ sfdelta.Runner = (*DryRunner)(nil)
	_ Quieter        = (*ExecRunner)(nil)
)
