package sfdelta

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Descriptor generated or command completed
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration (e.g. ambiguous default package directory)
	ExitMalformedXML      = 11 // Manifest or label bundle could not be parsed
	ExitChangeSourceError = 12 // Changed files could not be obtained
	ExitCommandFailed     = 13 // Salesforce CLI command failed
	ExitApprovalDenied    = 14 // User denied deployment approval
)

const (
	// MetadataNamespace is the XML namespace of package descriptors and metadata files.
	MetadataNamespace = "http://soap.sforce.com/2006/04/metadata"

	// WildcardMarker marks a manifest member meaning "all members of this type".
	// Wildcards are never forwarded into a change descriptor.
	WildcardMarker = "*"

	// DefaultProjectFile is the Salesforce DX project descriptor name.
	DefaultProjectFile = "sfdx-project.json"

	// DefaultManifestPath is the hand-maintained manifest merged into every delta.
	DefaultManifestPath = "manifest/package.xml"

	// DefaultOutputPath is where the merged descriptor is written.
	DefaultOutputPath = "delta.xml"

	// DefaultDeployWait is the number of minutes the deploy command waits for completion.
	DefaultDeployWait = 33

	// DefaultHTTPTimeout bounds a single request to GitLab or the versions endpoint.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 200 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 10 * time.Second

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts.
	DefaultRetryMaxAttempts = 3

	// DefaultApprovalCountdown is the countdown shown before a forced deployment proceeds.
	DefaultApprovalCountdown = 5 * time.Second
)
