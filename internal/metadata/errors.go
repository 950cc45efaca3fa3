package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// XMLError reports a descriptor or label bundle that could not be decoded.
// It includes the file path, an optional line number, and a fix hint.
type XMLError struct {
	Path    string // Path to the file with the error
	Line    int    // Line number (0 if unknown)
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *XMLError) Error() string {
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.Path, e.Line)
	}

	msg := fmt.Sprintf("malformed XML in %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match sfdelta.ErrMalformedXML.
func (e *XMLError) Unwrap() error {
	return sfdelta.ErrMalformedXML
}

// wrapXMLError converts xml package errors to XMLError with line numbers.
func wrapXMLError(err error, path, root string) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &XMLError{
			Path:    path,
			Line:    syntaxErr.Line,
			Message: syntaxErr.Msg,
			Hint:    "Check that all XML tags are properly closed and the file is not truncated.",
		}
	}

	return &XMLError{
		Path:    path,
		Message: err.Error(),
		Hint:    fmt.Sprintf("Expected a <%s> root element.", root),
	}
}
