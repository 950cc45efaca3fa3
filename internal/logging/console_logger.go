package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	logger *log.Logger
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

// NewWriterLogger creates a ConsoleLogger that writes to w.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &ConsoleLogger{
		logger: log.NewWithOptions(w, log.Options{
			Level:           level,
			ReportTimestamp: false,
		}),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Warn logs skipped, non-fatal conditions.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

var _ sfdelta.Logger = (*ConsoleLogger)(nil)
