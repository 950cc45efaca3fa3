package sfcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeployCommand(t *testing.T) {
	tests := []struct {
		name string
		opts DeployOptions
		want []string
	}{
		{
			name: "tests with spaces",
			opts: DeployOptions{Manifest: "delta.xml", Tests: "FooTest, BarTest ", Wait: 10},
			want: []string{"sfdx", "force:source:deploy", "-m", "delta.xml", "-l", "RunSpecifiedTests",
				"-r", "FooTest,BarTest", "-w", "10", "--verbose"},
		},
		{
			name: "no tests uses placeholder",
			opts: DeployOptions{Manifest: "delta.xml", Tests: "   "},
			want: []string{"sfdx", "force:source:deploy", "-m", "delta.xml", "-l", "RunSpecifiedTests",
				"-r", "not,a,test", "-w", "33", "--verbose"},
		},
		{
			name: "validate only",
			opts: DeployOptions{Tests: "FooTest", Validate: true},
			want: []string{"sfdx", "force:source:deploy", "-m", "manifest/package.xml", "-l", "RunSpecifiedTests",
				"-r", "FooTest", "-w", "33", "--verbose", "-c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeployCommand(tt.opts))
		})
	}
}

func TestAuthCommands(t *testing.T) {
	cmds := AuthCommands("prod", "/tmp/sfdxurl-1.txt")

	assert.Equal(t, [][]string{
		{"sfdx", "force:auth:sfdxurl:store", "--sfdxurlfile", "/tmp/sfdxurl-1.txt", "--setalias", "prod", "--json"},
		{"sfdx", "force:config:set", "defaultusername=prod"},
		{"sfdx", "force:config:set", "defaultdevhubusername=prod"},
	}, cmds)
}

func TestSourceDeltaCommand(t *testing.T) {
	assert.Equal(t,
		[]string{"sfdx", "sgd:source:delta", "--to", "HEAD", "--from", "HEAD~1", "--output", "."},
		SourceDeltaCommand("HEAD~1", "HEAD", ""))
}

func TestExtractTests(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		wantOK  bool
	}{
		{"single line", "Merge branch 'feature'\n\nApex::FooTest,BarTest::Apex", "FooTest,BarTest", true},
		{"spaces removed", "Apex:: FooTest, BarTest ::Apex", "FooTest,BarTest", true},
		{"first block wins", "Apex::A::Apex and Apex::B::Apex", "A", true},
		{"empty template", "See merge request\nApex::::Apex", "", false},
		{"no markers", "Fix typo", "", false},
		{"markers across lines", "Apex::Foo\nTest::Apex", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTests(tt.message)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
