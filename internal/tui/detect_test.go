package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearModeEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SFDELTA_NON_INTERACTIVE", "CI", "GITLAB_CI", "NO_COLOR"} {
		t.Setenv(k, "")
	}
}

func TestDetectMode_EnvironmentOverrides(t *testing.T) {
	for _, env := range []struct{ key, value string }{
		{"SFDELTA_NON_INTERACTIVE", "1"},
		{"CI", "true"},
		{"GITLAB_CI", "true"},
		{"NO_COLOR", "1"},
	} {
		t.Run(env.key, func(t *testing.T) {
			clearModeEnv(t)
			t.Setenv(env.key, env.value)
			assert.Equal(t, ModeNonInteractive, DetectMode())
		})
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// In test context, stdin/stdout are not terminals.
	clearModeEnv(t)
	assert.Equal(t, ModeNonInteractive, DetectMode())
	assert.False(t, IsInteractive())
}
