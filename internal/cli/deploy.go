package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/manifest"
	"github.com/vvka-141/sfdelta/internal/sfcli"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a package descriptor with the Salesforce CLI",
	Long: `Deploy runs "sfdx force:source:deploy" for a descriptor with the
RunSpecifiedTests level. Tests come from --tests or from an
Apex::TestA,TestB::Apex block in the commit message; when none are given
a placeholder keeps the deployment from running every local test.

A deployment that is not validation-only asks for confirmation: the org
alias must be typed in a terminal, and a countdown runs with --force or in
non-interactive environments (CI, GITLAB_CI, SFDELTA_NON_INTERACTIVE=1).

Examples:
  # Validate the generated delta
  sfdelta deploy --validate

  # Deploy in a pipeline, tests taken from $CI_COMMIT_MESSAGE
  sfdelta deploy --alias prod --force`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

type deployFlagValues struct {
	manifest, tests, commitMessage string
	alias                          string
	wait                           int
	validate, force                bool
}

var deployFlags deployFlagValues

func init() {
	rootCmd.AddCommand(deployCmd)

	f := deployCmd.Flags()
	f.StringVarP(&deployFlags.manifest, "manifest", "m", "", "Descriptor to deploy (default the delta output path)")
	f.StringVar(&deployFlags.tests, "tests", "", "Comma-separated Apex test classes to run")
	f.StringVar(&deployFlags.commitMessage, "commit-message", "", "Commit message holding Apex::tests::Apex (default $"+envCommitMessage+")")
	f.StringVar(&deployFlags.alias, "alias", "", "Target org alias shown in the confirmation (default $"+envOrgAlias+", then deploy.alias)")
	f.IntVarP(&deployFlags.wait, "wait", "w", sfdelta.DefaultDeployWait, "Minutes to wait for the deployment")
	f.BoolVarP(&deployFlags.validate, "validate", "c", false, "Validate only; nothing is committed to the org")
	f.BoolVar(&deployFlags.force, "force", false, "Skip the confirmation prompt (a countdown still runs)")
}

func runDeploy(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	v, err := resolveSettings(cmd,
		setting{key: "manifest", flag: "manifest", file: a.cfg.Output},
		setting{key: "commit-message", flag: "commit-message", env: envCommitMessage},
		setting{key: "alias", flag: "alias", env: envOrgAlias, file: a.cfg.Deploy.Alias},
		setting{key: "wait", flag: "wait", file: a.cfg.Deploy.Wait},
	)
	if err != nil {
		return err
	}

	opts := sfcli.DeployOptions{
		Manifest: v.GetString("manifest"),
		Tests:    deployFlags.tests,
		Wait:     v.GetInt("wait"),
		Validate: deployFlags.validate,
	}
	if opts.Tests == "" {
		if tests, ok := sfcli.ExtractTests(v.GetString("commit-message")); ok {
			a.logger.Verbose("tests from commit message: %s", tests)
			opts.Tests = tests
		}
	}

	pkg, err := manifest.Load(a.fs, opts.Manifest)
	if err != nil {
		return err
	}
	if opts.Tests == "" && manifest.RequiresApexTests(pkg) {
		a.logger.Warn("%s contains Apex but no tests were given; add Apex::TestClass::Apex to the commit message", opts.Manifest)
	}

	if !opts.Validate && !a.debug {
		target := firstNonEmpty(v.GetString("alias"), "default org")
		approved, err := newApprover(deployFlags.force, a.verbose).RequestApproval(cmd.Context(), target)
		if err != nil {
			return err
		}
		if !approved {
			return fmt.Errorf("deployment to %s cancelled: %w", target, sfdelta.ErrApprovalDenied)
		}
	}

	return a.runner(cmd).Run(cmd.Context(), sfcli.DeployCommand(opts))
}
