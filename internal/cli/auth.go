package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/sfcli"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate the Salesforce CLI from an SFDX auth URL",
	Long: `Auth stores an SFDX auth URL under an alias and makes that org the default
user and dev hub of the Salesforce CLI. The URL is passed through a private
temporary file that is removed afterwards; it never appears in a command
line or in the log.

Examples:
  SFDX_AUTH_URL=force://... sfdelta auth --alias ci`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

type authFlagValues struct {
	alias, url string
}

var authFlags authFlagValues

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.Flags().StringVar(&authFlags.alias, "alias", "", "Org alias (default $"+envOrgAlias+", then deploy.alias)")
	authCmd.Flags().StringVar(&authFlags.url, "url", "", "SFDX auth URL (default $"+envAuthURL+")")
}

func runAuth(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	v, err := resolveSettings(cmd,
		setting{key: "alias", flag: "alias", env: envOrgAlias, file: a.cfg.Deploy.Alias},
		setting{key: "url", flag: "url", env: envAuthURL},
	)
	if err != nil {
		return err
	}

	return sfcli.NewAuthenticator(a.runner(cmd), a.logger, "").
		Authenticate(cmd.Context(), v.GetString("alias"), v.GetString("url"))
}
