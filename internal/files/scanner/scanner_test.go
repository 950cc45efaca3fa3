package scanner

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScanner_NilFS(t *testing.T) {
	assert.Panics(t, func() { NewScanner(nil) })
}

func TestScanDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"sfdx-project.json":                                 {Data: []byte("{}")},
		"force-app/main/default/classes/Foo.cls":            {Data: []byte("class")},
		"force-app/main/default/classes/Foo.cls-meta.xml":   {Data: []byte("<ApexClass/>")},
		"force-app/main/default/lwc/card/card.js":           {Data: []byte("js")},
		"force-app/main/default/lwc/card/__tests__/card.js": {Data: []byte("test")},
		"force-app/.sfdx/cache.json":                        {Data: []byte("{}")},
		"force-app/main/default/.hidden/Skipped.cls":        {Data: []byte("class")},
		"force-app/main/default/classes/.Dotted.cls":        {Data: []byte("class")},
	}

	files, err := NewScanner(fsys).ScanDirectory("force-app")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"force-app/main/default/classes/.Dotted.cls",
		"force-app/main/default/classes/Foo.cls",
		"force-app/main/default/classes/Foo.cls-meta.xml",
		"force-app/main/default/lwc/card/__tests__/card.js",
		"force-app/main/default/lwc/card/card.js",
	}, files)
}

func TestScanDirectory_NormalizesRoot(t *testing.T) {
	fsys := fstest.MapFS{"force-app/a.cls": {Data: []byte("x")}}

	for _, dir := range []string{"force-app/", "/force-app", "./force-app"} {
		files, err := NewScanner(fsys).ScanDirectory(dir)
		require.NoError(t, err, dir)
		assert.Equal(t, []string{"force-app/a.cls"}, files, dir)
	}
}

func TestScanDirectory_WholeTree(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt":     {Data: []byte("x")},
		".git/HEAD": {Data: []byte("ref")},
		"src/b.txt": {Data: []byte("y")},
	}

	files, err := NewScanner(fsys).ScanDirectory(".")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "src/b.txt"}, files)
}

func TestScanDirectory_Missing(t *testing.T) {
	_, err := NewScanner(fstest.MapFS{}).ScanDirectory("force-app")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
