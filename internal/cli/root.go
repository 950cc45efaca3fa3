package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sfdelta",
	Short: "Delta package descriptors for Salesforce DX pipelines",
	Long: `sfdelta turns the files changed between two commits into a package.xml
descriptor that deploys exactly those components, merges in a hand-maintained
manifest, and drives the Salesforce CLI to authenticate and deploy.

CI variables are read as defaults when a flag is not given:
  CI_COMMIT_BEFORE_SHA, CI_COMMIT_SHA     --from, --to
  CI_SERVER_HOST, CI_PROJECT_ID           --gitlab-server, --gitlab-project
  GITLAB_TOKEN                            --gitlab-token
  CI_COMMIT_MESSAGE                       --commit-message
  SFDX_AUTH_URL                           --url (auth)
  SFDELTA_ORG_ALIAS                       --alias (auth, deploy)
  SFDELTA_VERSIONS_URL                    --url (api-version)
A .env file in the working directory is loaded first.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Malformed manifest or label bundle XML
  12 - Changed files could not be listed
  13 - Salesforce CLI command failed
  14 - User denied deployment approval`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is normal in CI where variables come from the runner.
		_ = godotenv.Load()
		return nil
	},
}

type rootFlagValues struct {
	verbose bool
	debug   bool
	dir     string
}

var rootFlags rootFlagValues

// Execute runs the root command. SIGINT and SIGTERM cancel the context
// handed to every command.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false,
		"Enable verbose output for all commands")
	rootCmd.PersistentFlags().BoolVar(&rootFlags.debug, "debug", false,
		"Print descriptors and Salesforce CLI commands instead of writing or running them")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.dir, "dir", "C", ".",
		"Repository root containing sfdx-project.json and sfdelta.yaml")
}
