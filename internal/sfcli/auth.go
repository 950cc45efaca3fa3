package sfcli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Authenticator logs the CLI into an org from an SFDX auth URL.
type Authenticator struct {
	runner  sfdelta.Runner
	logger  sfdelta.Logger
	tempDir string
}

// NewAuthenticator creates an Authenticator. tempDir holds the short-lived
// auth URL file; empty means the system default.
func NewAuthenticator(runner sfdelta.Runner, logger sfdelta.Logger, tempDir string) *Authenticator {
	return &Authenticator{runner: runner, logger: logger, tempDir: tempDir}
}

// Authenticate stores authURL under alias and makes it the default org.
// The URL is written to a private temp file that is removed afterwards,
// whatever the outcome, and never appears in a command line or log.
func (a *Authenticator) Authenticate(ctx context.Context, alias, authURL string) error {
	alias = strings.TrimSpace(alias)
	authURL = strings.TrimSpace(authURL)
	if alias == "" {
		return fmt.Errorf("org alias is required: %w", sfdelta.ErrInvalidConfig)
	}
	if authURL == "" {
		return fmt.Errorf("SFDX auth URL is required: %w", sfdelta.ErrInvalidConfig)
	}

	urlFile, err := writeTemp(a.tempDir, authURL)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(urlFile); rmErr != nil && !os.IsNotExist(rmErr) {
			a.logger.Warn("failed to remove auth URL file %s: %v", urlFile, rmErr)
		}
	}()

	for i, args := range AuthCommands(alias, urlFile) {
		runner := a.runner
		if q, ok := runner.(Quieter); ok && i == 0 {
			runner = q.Quiet()
		}
		if err := runner.Run(ctx, args); err != nil {
			return err
		}
	}

	a.logger.Info("authenticated org %s", alias)
	return nil
}

func writeTemp(dir, content string) (string, error) {
	f, err := os.CreateTemp(dir, "sfdxurl-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create auth URL file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write auth URL file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write auth URL file: %w", err)
	}
	return f.Name(), nil
}
