package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/sfcli"
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Print the Apex tests named in a commit message",
	Long: `Tests prints the comma-separated Apex test classes between the Apex:: and
::Apex markers of a commit message, or the "` + sfcli.NoTestsPlaceholder + `" placeholder when
there are none.

Examples:
  sfdelta tests --message "Fix rounding Apex::InvoiceTest, TaxTest::Apex"`,
	Args: cobra.NoArgs,
	RunE: runTests,
}

var testsFlags struct {
	message string
}

func init() {
	rootCmd.AddCommand(testsCmd)

	testsCmd.Flags().StringVar(&testsFlags.message, "message", "", "Commit message (default $"+envCommitMessage+")")
}

func runTests(cmd *cobra.Command, args []string) error {
	v, err := resolveSettings(cmd, setting{key: "message", flag: "message", env: envCommitMessage})
	if err != nil {
		return err
	}
	tests, ok := sfcli.ExtractTests(v.GetString("message"))
	if !ok {
		tests = sfcli.NoTestsPlaceholder
	}
	fmt.Fprintln(cmd.OutOrStdout(), tests)
	return nil
}
