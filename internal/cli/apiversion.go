package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/apiversion"
	"github.com/vvka-141/sfdelta/internal/project"
)

var apiVersionCmd = &cobra.Command{
	Use:   "api-version",
	Short: "Print the latest platform API version",
	Long: `Api-version queries a versions endpoint, such as
https://<instance>.my.salesforce.com/services/data, and prints the highest
API version it lists. With --update, sourceApiVersion of sfdx-project.json is
set to that version; the command fails when it is already current.

Examples:
  sfdelta api-version --url https://example.my.salesforce.com/services/data
  sfdelta api-version --update`,
	Args: cobra.NoArgs,
	RunE: runAPIVersion,
}

type apiVersionFlagValues struct {
	url    string
	update bool
}

var apiVersionFlags apiVersionFlagValues

func init() {
	rootCmd.AddCommand(apiVersionCmd)

	apiVersionCmd.Flags().StringVar(&apiVersionFlags.url, "url", "", "Versions endpoint (default $"+envVersionsURL+", then versions_url of sfdelta.yaml)")
	apiVersionCmd.Flags().BoolVar(&apiVersionFlags.update, "update", false, "Write the version to sourceApiVersion of the project file")
}

func runAPIVersion(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	v, err := resolveSettings(cmd, setting{key: "url", flag: "url", env: envVersionsURL, file: a.cfg.VersionsURL})
	if err != nil {
		return err
	}

	latest, err := apiversion.NewClient(a.httpClient(), a.logger).Latest(cmd.Context(), v.GetString("url"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), latest)

	if !apiVersionFlags.update {
		return nil
	}
	if a.debug {
		a.logger.Info("would set sourceApiVersion of %s to %s", a.cfg.Project, latest)
		return nil
	}
	err = project.UpdateSourceAPIVersion(a.fs, a.cfg.Project, latest)
	if errors.Is(err, project.ErrAlreadyLatest) {
		a.logger.Info("%s already uses API version %s", a.cfg.Project, latest)
	}
	if err != nil {
		return err
	}
	a.logger.Info("set sourceApiVersion of %s to %s", a.cfg.Project, latest)
	return nil
}
