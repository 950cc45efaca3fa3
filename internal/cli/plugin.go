package cli

import (
	"path"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/changeset"
	"github.com/vvka-141/sfdelta/internal/sfcli"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Generate the delta with the sfdx-git-delta plugin and merge the manifest",
	Long: `Plugin runs "sfdx sgd:source:delta" for the revision range, then merges the
package/package.xml it produces with the hand-maintained manifest, like the
merge command. Use it when the plugin is installed and its classification is
preferred over the built-in one.

Examples:
  sfdelta plugin --from HEAD~1
  sfdelta plugin --from "$CI_COMMIT_BEFORE_SHA" --plugin-output .delta`,
	Args: cobra.NoArgs,
	RunE: runPlugin,
}

type pluginFlagValues struct {
	from, to         string
	pluginOutput     string
	output, manifest string
	apiVersion       string
}

var pluginFlags pluginFlagValues

func init() {
	rootCmd.AddCommand(pluginCmd)

	f := pluginCmd.Flags()
	f.StringVar(&pluginFlags.from, "from", "", "Base revision (default $CI_COMMIT_BEFORE_SHA)")
	f.StringVar(&pluginFlags.to, "to", "HEAD", "Target revision (default $CI_COMMIT_SHA, then HEAD)")
	f.StringVar(&pluginFlags.pluginOutput, "plugin-output", ".", "Directory the plugin writes package/package.xml under")
	f.StringVarP(&pluginFlags.output, "output", "o", "", "Descriptor output path (default "+sfdelta.DefaultOutputPath+")")
	f.StringVarP(&pluginFlags.manifest, "manifest", "m", "", "Manifest merged into the result (default "+sfdelta.DefaultManifestPath+")")
	f.StringVar(&pluginFlags.apiVersion, "api-version", "", "Descriptor API version")
}

func runPlugin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	v, err := resolveSettings(cmd,
		setting{key: "from", flag: "from", env: envFromRef},
		setting{key: "to", flag: "to", env: envToRef},
		setting{key: "output", flag: "output", file: a.cfg.Output},
		setting{key: "manifest", flag: "manifest", file: a.cfg.Manifest},
		setting{key: "api-version", flag: "api-version", file: a.cfg.APIVersion},
	)
	if err != nil {
		return err
	}

	from, to := v.GetString("from"), firstNonEmpty(v.GetString("to"), "HEAD")
	if from == "" {
		return errRequired("base revision", "--from", envFromRef)
	}

	if err := a.runner(cmd).Run(cmd.Context(), sfcli.SourceDeltaCommand(from, to, pluginFlags.pluginOutput)); err != nil {
		return err
	}
	if a.debug {
		// Nothing was generated to merge.
		return nil
	}

	generated := path.Join(pluginFlags.pluginOutput, "package", "package.xml")
	cs, declared, err := a.mergeDescriptors(changeset.New(), []string{generated})
	if err != nil {
		return err
	}
	cs, err = a.mergeManifest(cs, v.GetString("manifest"))
	if err != nil {
		return err
	}

	apiVersion := firstNonEmpty(v.GetString("api-version"), declared)
	if apiVersion == "" {
		apiVersion = a.projectAPIVersion()
	}
	return a.renderAndWrite(cmd, "Plugin delta "+from+".."+to, cs, apiVersion, v.GetString("output"))
}
