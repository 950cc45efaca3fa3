package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

const labelsPath = "force-app/main/default/labels/CustomLabels.labels-meta.xml"

const greetingBundle = `<?xml version="1.0" encoding="UTF-8"?>
<CustomLabels xmlns="http://soap.sforce.com/2006/04/metadata">
    <labels>
        <fullName>Greeting</fullName>
        <value>Hello</value>
    </labels>
</CustomLabels>
`

const farewellBundle = `<?xml version="1.0" encoding="UTF-8"?>
<CustomLabels xmlns="http://soap.sforce.com/2006/04/metadata">
    <labels>
        <fullName>Greeting</fullName>
        <value>Hello</value>
    </labels>
    <labels>
        <fullName>Farewell</fullName>
        <value>See you</value>
    </labels>
</CustomLabels>
`

const projectManifest = `<?xml version="1.0" encoding="UTF-8"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>*</members>
        <name>ApexClass</name>
    </types>
    <types>
        <members>Home</members>
        <name>ApexPage</name>
    </types>
    <version>57.0</version>
</Package>
`

const wantDelta = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Foo</members>
        <name>ApexClass</name>
    </types>
    <types>
        <members>Home</members>
        <name>ApexPage</name>
    </types>
    <types>
        <members>Farewell</members>
        <name>CustomLabel</name>
    </types>
    <version>58.0</version>
</Package>
`

// deltaRepo builds a two-commit history: the second commit adds a class,
// a label, an ignored file and a file outside the package directory, and
// deletes a class.
func deltaRepo(t *testing.T) (dir, from, to string) {
	t.Helper()
	r := newGitRepo(t)
	r.write("sfdelta.yaml", "ignore:\n  - \"**/README.md\"\n")
	r.write(sfdelta.DefaultManifestPath, projectManifest)
	r.write(labelsPath, greetingBundle)
	r.write("force-app/main/default/classes/Old.cls", "public class Old {}\n")
	from = r.commit("initial")

	r.write("force-app/main/default/classes/Foo.cls", "public class Foo {}\n")
	r.write("force-app/main/default/classes/Foo.cls-meta.xml", "<ApexClass/>\n")
	r.write("force-app/main/default/classes/README.md", "notes\n")
	r.write("docs/notes.md", "notes\n")
	r.write(labelsPath, farewellBundle)
	r.remove("force-app/main/default/classes/Old.cls")
	to = r.commit("add Foo")
	return r.dir, from, to
}

func TestDelta_GitRange(t *testing.T) {
	dir, from, to := deltaRepo(t)

	_, stderr, err := executeCommand(t, "delta", "--dir", dir, "--from", from, "--to", to)
	require.NoError(t, err)

	assert.Equal(t, wantDelta, readFile(t, dir, sfdelta.DefaultOutputPath))
	assert.Contains(t, stderr, "3 members in 3 types")
}

func TestDelta_RevisionsFromEnvironment(t *testing.T) {
	dir, from, to := deltaRepo(t)
	t.Setenv(envFromRef, from)
	t.Setenv(envToRef, to)

	_, _, err := executeCommand(t, "delta", "--dir", dir, "-o", "out/delta.xml")
	require.NoError(t, err)

	assert.Equal(t, wantDelta, readFile(t, dir, "out/delta.xml"))
}

func TestDelta_DebugPrintsInsteadOfWriting(t *testing.T) {
	dir, from, to := deltaRepo(t)

	stdout, _, err := executeCommand(t, "delta", "--dir", dir, "--from", from, "--to", to, "--debug")
	require.NoError(t, err)

	assert.Equal(t, wantDelta, stdout)
	_, statErr := os.Stat(filepath.Join(dir, sfdelta.DefaultOutputPath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelta_ConfigOutputAndFlagOverride(t *testing.T) {
	dir, from, to := deltaRepo(t)
	writeFile(t, dir, "sfdelta.yaml", "output: from-config.xml\napi_version: \"60.0\"\n")

	_, _, err := executeCommand(t, "delta", "--dir", dir, "--from", from, "--to", to)
	require.NoError(t, err)
	content := readFile(t, dir, "from-config.xml")
	assert.Contains(t, content, "<version>60.0</version>")

	_, _, err = executeCommand(t, "delta", "--dir", dir, "--from", from, "--to", to,
		"--output", "from-flag.xml", "--api-version", "61.0")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, dir, "from-flag.xml"), "<version>61.0</version>")
}

func TestDelta_MissingManifestIsSkipped(t *testing.T) {
	dir, from, to := deltaRepo(t)

	_, _, err := executeCommand(t, "delta", "--dir", dir, "--from", from, "--to", to, "--manifest", "nope.xml")
	require.NoError(t, err)

	content := readFile(t, dir, sfdelta.DefaultOutputPath)
	assert.NotContains(t, content, "ApexPage")
	assert.Contains(t, content, "<members>Foo</members>")
}

func TestDelta_RequiresBaseRevision(t *testing.T) {
	dir, _, _ := deltaRepo(t)

	_, _, err := executeCommand(t, "delta", "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, sfdelta.ExitConfigError, sfdelta.ExitCodeForError(err))
}

func TestDelta_UnknownRevision(t *testing.T) {
	dir, _, _ := deltaRepo(t)

	_, _, err := executeCommand(t, "delta", "--dir", dir, "--from", "no-such-ref")
	require.Error(t, err)
	assert.Equal(t, sfdelta.ExitChangeSourceError, sfdelta.ExitCodeForError(err))
}

func TestDelta_InvalidProject(t *testing.T) {
	dir, from, to := deltaRepo(t)
	writeFile(t, dir, sfdelta.DefaultProjectFile, `{"packageDirectories": [{"path": "a"}, {"path": "b"}]}`)

	_, _, err := executeCommand(t, "delta", "--dir", dir, "--from", from, "--to", to)
	require.Error(t, err)
	assert.Equal(t, sfdelta.ExitConfigError, sfdelta.ExitCodeForError(err))
}

func TestDelta_GitLabSource(t *testing.T) {
	var gotToken, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("PRIVATE-TOKEN")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"diffs": []map[string]any{
				{"new_path": "force-app/main/default/classes/Bar.cls", "diff": "+public class Bar {}"},
				{"new_path": "force-app/main/default/classes/Gone.cls", "deleted_file": true},
				{"new_path": labelsPath, "diff": "+        <fullName>Welcome</fullName>"},
			},
		})
	}))
	defer srv.Close()

	dir := newProjectDir(t)
	t.Setenv(envGitLabToken, "secret")
	t.Setenv(envGitLabProject, "42")

	stdout, _, err := executeCommand(t, "delta", "--dir", dir, "--source", "gitlab",
		"--gitlab-server", srv.URL, "--from", "aaa", "--to", "bbb", "--debug")
	require.NoError(t, err)

	assert.Equal(t, "secret", gotToken)
	assert.Equal(t, "/api/v4/projects/42/repository/compare", gotPath)
	assert.Contains(t, stdout, "<members>Bar</members>")
	assert.Contains(t, stdout, "<members>Welcome</members>")
	assert.NotContains(t, stdout, "Gone")
}

func TestDelta_GitLabRequiresToken(t *testing.T) {
	dir := newProjectDir(t)

	_, _, err := executeCommand(t, "delta", "--dir", dir, "--source", "gitlab",
		"--gitlab-server", "gitlab.example.com", "--gitlab-project", "1", "--from", "a")
	require.Error(t, err)
	assert.Equal(t, sfdelta.ExitConfigError, sfdelta.ExitCodeForError(err))
}

func TestDelta_TreeSource(t *testing.T) {
	dir := newProjectDir(t)
	writeFile(t, dir, "force-app/main/default/classes/Foo.cls", "public class Foo {}")
	writeFile(t, dir, "force-app/main/default/classes/Foo.cls-meta.xml", "<ApexClass/>")
	writeFile(t, dir, labelsPath, farewellBundle)
	writeFile(t, dir, "scripts/setup.sh", "echo")

	stdout, _, err := executeCommand(t, "delta", "--dir", dir, "--source", "tree", "--debug")
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Foo</members>
        <name>ApexClass</name>
    </types>
    <types>
        <members>Farewell</members>
        <members>Greeting</members>
        <name>CustomLabel</name>
    </types>
    <version>58.0</version>
</Package>
`
	assert.Equal(t, want, stdout)
}
