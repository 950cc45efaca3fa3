package sfdelta

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := gen.Generate(ctx, req)
//	if errors.Is(err, sfdelta.ErrMalformedXML) {
//	    // A manifest or label bundle could not be parsed
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedXML indicates a manifest or label bundle is not well-formed XML.
	ErrMalformedXML = errors.New("malformed XML")

	// ErrChangeSource indicates the changed-file list could not be obtained.
	ErrChangeSource = errors.New("change source failed")

	// ErrCommandFailed indicates an external Salesforce CLI command failed.
	ErrCommandFailed = errors.New("command failed")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrAPIVersionUnavailable indicates the platform API version could not be determined.
	ErrAPIVersionUnavailable = errors.New("API version unavailable")
)

// usageErrorPrefixes are the message prefixes cobra and pflag use for
// command-line misuse.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrAPIVersionUnavailable):
		return ExitConfigError
	case errors.Is(err, ErrMalformedXML):
		return ExitMalformedXML
	case errors.Is(err, ErrChangeSource):
		return ExitChangeSourceError
	case errors.Is(err, ErrCommandFailed):
		return ExitCommandFailed
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	msg := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
