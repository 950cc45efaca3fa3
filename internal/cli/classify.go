package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <path>...",
	Short: "Show the metadata components each path maps to",
	Long: `Classify prints the metadata type and members each repository-relative
path maps to, one line per component. Paths that are not deployable metadata
are listed with "-". Label bundles are read from the working tree and all of
their labels are listed.

Examples:
  sfdelta classify force-app/main/default/classes/Foo.cls
  git diff --name-only HEAD~1 | xargs sfdelta classify`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	c := a.classifier()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, p := range args {
		cl, err := c.Classify(p, "", false)
		if err != nil {
			return err
		}
		if cl.IsZero() {
			fmt.Fprintf(w, "%s\t-\t\n", p)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p, cl.Type, strings.Join(cl.Members, ","))
	}
	return w.Flush()
}
