package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/sfdelta/internal/tui"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// InteractiveApprover asks the user to type the target org alias before a
// deployment that is not validation-only.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover on stdin and stderr.
func NewInteractiveApprover(verbose bool) sfdelta.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval approves only when the typed line equals target.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintf(a.output, "\n%s\n", tui.WarningStyle.Render(fmt.Sprintf("You are about to deploy to org '%s'.", target)))
	fmt.Fprintf(a.output, "To confirm, type the org alias '%s' and press Enter: ", target)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		line, err := bufio.NewReader(a.input).ReadString('\n')
		if err != nil && line == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == target {
			fmt.Fprintf(a.output, "%s Confirmed. Proceeding with deployment...\n", tui.SymbolCheck)
			return true, nil
		}
		fmt.Fprintf(a.output, "%s Input '%s' does not match org alias '%s'. Deployment cancelled.\n", tui.SymbolCross, input, target)
		return false, nil
	}
}

var _ sfdelta.Approver = (*InteractiveApprover)(nil)
