package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Environment variables read as flag fallbacks.
const (
	envFromRef       = "CI_COMMIT_BEFORE_SHA"
	envToRef         = "CI_COMMIT_SHA"
	envGitLabServer  = "CI_SERVER_HOST"
	envGitLabProject = "CI_PROJECT_ID"
	envGitLabToken   = "GITLAB_TOKEN"
	envCommitMessage = "CI_COMMIT_MESSAGE"
	envAuthURL       = "SFDX_AUTH_URL"
	envVersionsURL   = "SFDELTA_VERSIONS_URL"
	envOrgAlias      = "SFDELTA_ORG_ALIAS"
)

// setting binds one value to its flag, environment variable, and
// sfdelta.yaml value.
type setting struct {
	key  string
	flag string
	env  string
	file any
}

// resolveSettings layers each setting as flag > environment > sfdelta.yaml
// > flag default.
func resolveSettings(cmd *cobra.Command, settings ...setting) (*viper.Viper, error) {
	v := viper.New()
	for _, s := range settings {
		if s.env != "" {
			if err := v.BindEnv(s.key, s.env); err != nil {
				return nil, err
			}
		}
		if s.file != nil && s.file != "" && s.file != 0 {
			v.SetDefault(s.key, s.file)
		}
		if f := cmd.Flags().Lookup(s.flag); f != nil {
			if err := v.BindPFlag(s.key, f); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// errRequired reports a missing setting together with where it can be given.
func errRequired(what, flag, env string) error {
	return fmt.Errorf("%s is required: pass %s or set %s: %w", what, flag, env, sfdelta.ErrInvalidConfig)
}
