package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/sfdelta/internal/tui"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// ForcedApprover approves a deployment after a cancellable countdown. It is
// used with --force and in pipelines where nobody can answer a prompt.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) sfdelta.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr, sleepFn: time.Sleep}
}

// RequestApproval counts down and then approves unless ctx is cancelled.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintln(a.output)
	fmt.Fprintln(a.output, tui.WarningStyle.Render(fmt.Sprintf("Deploying to org '%s' without confirmation.", target)))

	seconds := int(sfdelta.DefaultApprovalCountdown.Seconds())
	for i := seconds; i > 0; i-- {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(a.output)
			return false, err
		}
		fmt.Fprintf(a.output, "\rDeploying in: %d seconds... (Press Ctrl+C to cancel)", i)
		a.sleepFn(time.Second)
	}
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(a.output)
		return false, err
	}

	fmt.Fprintf(a.output, "\r%s Proceeding with deployment to %s...                    \n", tui.SymbolCheck, target)
	return true, nil
}

var _ sfdelta.Approver = (*ForcedApprover)(nil)
