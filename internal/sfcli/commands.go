package sfcli

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Executable is the Salesforce CLI binary name.
const Executable = "sfdx"

// NoTestsPlaceholder is passed as the test list when none were requested.
// RunSpecifiedTests requires a value, and a class that does not exist runs
// nothing.
const NoTestsPlaceholder = "not,a,test"

var (
	whitespace   = regexp.MustCompile(`\s+`)
	testsPattern = regexp.MustCompile(`Apex::(.*?)::Apex`)
)

// DeployOptions configures a source deployment.
type DeployOptions struct {
	Manifest string
	Tests    string
	Wait     int
	Validate bool
}

// DeployCommand returns the force:source:deploy invocation for opts.
func DeployCommand(opts DeployOptions) []string {
	manifest := opts.Manifest
	if manifest == "" {
		manifest = sfdelta.DefaultManifestPath
	}
	wait := opts.Wait
	if wait <= 0 {
		wait = sfdelta.DefaultDeployWait
	}
	tests := whitespace.ReplaceAllString(opts.Tests, "")
	if tests == "" {
		tests = NoTestsPlaceholder
	}

	args := []string{
		Executable, "force:source:deploy",
		"-m", manifest,
		"-l", "RunSpecifiedTests",
		"-r", tests,
		"-w", strconv.Itoa(wait),
		"--verbose",
	}
	if opts.Validate {
		args = append(args, "-c")
	}
	return args
}

// AuthCommands returns the commands that store the auth URL read from
// urlFile under alias and make alias the default org and dev hub.
func AuthCommands(alias, urlFile string) [][]string {
	return [][]string{
		{Executable, "force:auth:sfdxurl:store", "--sfdxurlfile", urlFile, "--setalias", alias, "--json"},
		{Executable, "force:config:set", "defaultusername=" + alias},
		{Executable, "force:config:set", "defaultdevhubusername=" + alias},
	}
}

// SourceDeltaCommand returns the sfdx-git-delta plugin invocation writing
// its package under outputDir.
func SourceDeltaCommand(from, to, outputDir string) []string {
	if outputDir == "" {
		outputDir = "."
	}
	return []string{Executable, "sgd:source:delta", "--to", to, "--from", from, "--output", outputDir}
}

// ExtractTests returns the comma-separated test classes between the
// Apex:: and ::Apex markers of a commit message, with whitespace removed.
func ExtractTests(commitMessage string) (string, bool) {
	m := testsPattern.FindStringSubmatch(commitMessage)
	if m == nil {
		return "", false
	}
	tests := whitespace.ReplaceAllString(m[1], "")
	return tests, strings.Trim(tests, ",") != ""
}
