package sfdelta

import "context"

// Runner executes an external command given as an argument vector.
//
// Implementations:
//   - sfcli.ExecRunner: runs the command, streaming its output
//   - sfcli.DryRunner: prints the shell-quoted command instead of running it
type Runner interface {
	Run(ctx context.Context, args []string) error
}
