package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/sfdelta/internal/changeset"
	"github.com/vvka-141/sfdelta/internal/manifest"
	"github.com/vvka-141/sfdelta/internal/project"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <descriptor>...",
	Short: "Merge package descriptors with the project manifest",
	Long: `Merge combines one or more package.xml descriptors, for example the one
produced by the sfdx-git-delta plugin, with the hand-maintained manifest and
writes a single descriptor. Wildcard members are skipped.

The API version is taken from --api-version, sfdelta.yaml, the first
descriptor that declares one, and finally sourceApiVersion of the project.

Examples:
  sfdelta merge package/package.xml
  sfdelta merge a.xml b.xml -o combined.xml --manifest ""`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

type mergeFlagValues struct {
	output, manifest, apiVersion string
}

var mergeFlags mergeFlagValues

func init() {
	rootCmd.AddCommand(mergeCmd)

	f := mergeCmd.Flags()
	f.StringVarP(&mergeFlags.output, "output", "o", "", "Descriptor output path (default "+sfdelta.DefaultOutputPath+")")
	f.StringVarP(&mergeFlags.manifest, "manifest", "m", "", "Manifest merged into the result (default "+sfdelta.DefaultManifestPath+")")
	f.StringVar(&mergeFlags.apiVersion, "api-version", "", "Descriptor API version")
}

func runMerge(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	v, err := resolveSettings(cmd,
		setting{key: "output", flag: "output", file: a.cfg.Output},
		setting{key: "manifest", flag: "manifest", file: a.cfg.Manifest},
		setting{key: "api-version", flag: "api-version", file: a.cfg.APIVersion},
	)
	if err != nil {
		return err
	}

	cs, declared, err := a.mergeDescriptors(changeset.New(), args)
	if err != nil {
		return err
	}
	// An explicitly empty --manifest disables the manifest.
	cs, err = a.mergeManifest(cs, v.GetString("manifest"))
	if err != nil {
		return err
	}

	apiVersion := firstNonEmpty(v.GetString("api-version"), declared)
	if apiVersion == "" {
		apiVersion = a.projectAPIVersion()
	}
	return a.renderAndWrite(cmd, "Merged descriptor", cs, apiVersion, v.GetString("output"))
}

// mergeDescriptors merges every descriptor into cs and returns the first
// declared API version.
func (a *app) mergeDescriptors(cs *changeset.ChangeSet, paths []string) (*changeset.ChangeSet, string, error) {
	var declared string
	for _, p := range paths {
		pkg, err := manifest.Load(a.fs, p)
		if err != nil {
			return nil, "", err
		}
		if declared == "" {
			declared = pkg.Version
		}
		var skipped int
		cs, skipped = manifest.Merge(cs, pkg, a.logger)
		a.logger.Verbose("merged %s (%d types, %d wildcards skipped)", p, len(pkg.Types), skipped)
	}
	return cs, declared, nil
}

// projectAPIVersion returns sourceApiVersion of the project file, or ""
// when it cannot be read.
func (a *app) projectAPIVersion() string {
	proj, err := project.Load(a.fs, a.cfg.Project)
	if err != nil {
		a.logger.Verbose("no API version from %s: %v", a.cfg.Project, err)
		return ""
	}
	return proj.SourceAPIVersion
}

func (a *app) renderAndWrite(cmd *cobra.Command, title string, cs *changeset.ChangeSet, apiVersion, output string) error {
	content, err := manifest.Render(cs, apiVersion)
	if err != nil {
		return err
	}
	if err := a.writeDescriptor(cmd, output, content); err != nil {
		return err
	}
	a.summarize(cmd, title, cs)
	return nil
}
