package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/project"
)

var packageDirCmd = &cobra.Command{
	Use:   "package-dir",
	Short: "Print the default package directory of the project",
	Long: `Package-dir prints the path of the default package directory declared in
sfdx-project.json. It fails when the declaration is missing or ambiguous.`,
	Args: cobra.NoArgs,
	RunE: runPackageDir,
}

func init() {
	rootCmd.AddCommand(packageDirCmd)
}

func runPackageDir(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	proj, err := project.Load(a.fs, a.cfg.Project)
	if err != nil {
		return err
	}
	dir, err := proj.DefaultPackageDirectory()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}
