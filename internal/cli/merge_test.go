package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

const pluginPackage = `<?xml version="1.0" encoding="UTF-8"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Account.Rating__c</members>
        <name>CustomField</name>
    </types>
    <version>59.0</version>
</Package>
`

func TestMerge_DescriptorAndManifest(t *testing.T) {
	dir := newProjectDir(t)
	writeFile(t, dir, "package/package.xml", pluginPackage)
	writeFile(t, dir, sfdelta.DefaultManifestPath, projectManifest)

	_, _, err := executeCommand(t, "merge", "--dir", dir, "package/package.xml")
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Home</members>
        <name>ApexPage</name>
    </types>
    <types>
        <members>Account.Rating__c</members>
        <name>CustomField</name>
    </types>
    <version>59.0</version>
</Package>
`
	assert.Equal(t, want, readFile(t, dir, sfdelta.DefaultOutputPath))
}

func TestMerge_EmptyManifestFlagDisablesManifest(t *testing.T) {
	dir := newProjectDir(t)
	writeFile(t, dir, "a.xml", pluginPackage)
	writeFile(t, dir, sfdelta.DefaultManifestPath, projectManifest)

	stdout, _, err := executeCommand(t, "merge", "--dir", dir, "--manifest", "", "--debug", "a.xml")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "ApexPage")
	assert.Contains(t, stdout, "Account.Rating__c")
}

func TestMerge_FallsBackToProjectAPIVersion(t *testing.T) {
	dir := newProjectDir(t)
	writeFile(t, dir, "a.xml", `<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types><members>Foo</members><name>ApexClass</name></types>
</Package>`)

	stdout, _, err := executeCommand(t, "merge", "--dir", dir, "--debug", "a.xml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<version>58.0</version>")
}

func TestMerge_MalformedDescriptor(t *testing.T) {
	dir := newProjectDir(t)
	writeFile(t, dir, "broken.xml", "<Package><types>")

	_, _, err := executeCommand(t, "merge", "--dir", dir, "broken.xml")
	require.Error(t, err)
	assert.Equal(t, sfdelta.ExitMalformedXML, sfdelta.ExitCodeForError(err))
}

func TestMerge_RequiresDescriptor(t *testing.T) {
	_, _, err := executeCommand(t, "merge")
	require.Error(t, err)
	assert.Equal(t, sfdelta.ExitUsageError, sfdelta.ExitCodeForError(err))
}

func TestPlugin_RunsSourceDeltaAndMerges(t *testing.T) {
	dir := newProjectDir(t)
	writeFile(t, dir, ".delta/package/package.xml", pluginPackage)
	runner := stubRunner(t)

	_, _, err := executeCommand(t, "plugin", "--dir", dir, "--from", "abc", "--plugin-output", ".delta")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"sfdx", "sgd:source:delta", "--to", "HEAD", "--from", "abc", "--output", ".delta"}, runner.calls[0])
	assert.Contains(t, readFile(t, dir, sfdelta.DefaultOutputPath), "Account.Rating__c")
}

func TestPlugin_DebugOnlyPrintsCommand(t *testing.T) {
	dir := newProjectDir(t)

	stdout, _, err := executeCommand(t, "plugin", "--dir", dir, "--from", "abc", "--debug")
	require.NoError(t, err)
	assert.Equal(t, "sfdx sgd:source:delta --to HEAD --from abc --output .\n", stdout)
}

func TestPlugin_RequiresBaseRevision(t *testing.T) {
	dir := newProjectDir(t)
	stubRunner(t)

	_, _, err := executeCommand(t, "plugin", "--dir", dir)
	assert.ErrorIs(t, err, sfdelta.ErrInvalidConfig)
}
