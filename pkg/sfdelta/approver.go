package sfdelta

import "context"

// Approver handles user confirmation before a non-validation deployment
// changes a target org.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the target org alias
type Approver interface {
	// RequestApproval returns true when the deployment to target may proceed.
	RequestApproval(ctx context.Context, target string) (bool, error)
}
