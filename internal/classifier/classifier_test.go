package classifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sfdelta/internal/logging"
)

const root = "force-app/main/default/"

func TestClassify_PathDerived(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantType string
		want     string
	}{
		{"apex class", root + "classes/Foo.cls", "ApexClass", "Foo"},
		{"apex class meta", root + "classes/Foo.cls-meta.xml", "ApexClass", "Foo"},
		{"trigger", root + "triggers/AccountTrigger.trigger", "ApexTrigger", "AccountTrigger"},
		{"custom field", root + "objects/Account/fields/MyField__c.field-meta.xml", "CustomField", "Account.MyField__c"},
		{"web link under object", root + "objects/Account/webLinks/Google.webLink-meta.xml", "WebLink", "Account.Google"},
		{"record type", root + "objects/Case/recordTypes/Support.recordType-meta.xml", "RecordType", "Case.Support"},
		{"object itself", root + "objects/Account/Account.object-meta.xml", "CustomObject", "Account"},
		{"report in folder", root + "reports/MyFolder/MyReport.report-meta.xml", "Report", "MyFolder/MyReport"},
		{"report in nested folder", root + "reports/Sales/Q1/Pipeline.report-meta.xml", "Report", "Sales/Q1/Pipeline"},
		{"report folder meta", root + "reports/MyFolder.reportFolder-meta.xml", "Report", "MyFolder"},
		{"email template", root + "email/Support/Welcome.email", "EmailTemplate", "Support/Welcome"},
		{"lwc bundle file", root + "lwc/myComp/myComp.js", "LightningComponentBundle", "myComp"},
		{"lwc nested test", root + "lwc/myComp/__tests__/myComp.test.js", "LightningComponentBundle", "myComp"},
		{"aura bundle", root + "aura/Widget/WidgetController.js", "AuraDefinitionBundle", "Widget"},
		{"static resource meta", root + "staticresources/logo.resource-meta.xml", "StaticResource", "logo"},
		{"layout with dots", root + "layouts/Account-Account Layout.layout-meta.xml", "Layout", "Account-Account Layout"},
		{"leading slash", "/" + root + "classes/Bar.cls", "ApexClass", "Bar"},
		{"windows separators", "force-app\\main\\default\\pages\\Home.page", "ApexPage", "Home"},
		{"sharing rules", root + "sharingRules/Account.sharingRules-meta.xml", "SharingRules", "Account"},
	}

	c := New(logging.NewNullLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.path, "", false)
			require.NoError(t, err)
			assert.Equal(t, Classification{Type: tt.wantType, Members: []string{tt.want}}, got)
		})
	}
}

func TestClassify_NotMetadata(t *testing.T) {
	paths := []string{
		"README.md",
		".gitlab-ci.yml",
		"scripts/deploy.sh",
		root + "objects/fields/Orphan__c.field-meta.xml",
		"docs/classes",
		"",
	}

	c := New(logging.NewNullLogger())
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			got, err := c.Classify(p, "", false)
			require.NoError(t, err)
			assert.True(t, got.IsZero())
		})
	}
}

func TestClassify_FirstRegistryKeyWins(t *testing.T) {
	// "classes" precedes "pages" in the registry regardless of path position.
	c := New(logging.NewNullLogger())
	got, err := c.Classify("pages/classes/Foo.cls", "", false)
	require.NoError(t, err)
	assert.Equal(t, "ApexClass", got.Type)
}

func TestClassify_InFileWithoutResolver(t *testing.T) {
	c := New(logging.NewNullLogger())
	_, err := c.Classify(root+"labels/CustomLabels.labels-meta.xml", "", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoResolver))
}

func TestClassify_InFileDispatch(t *testing.T) {
	var seen Candidate
	c := New(logging.NewNullLogger()).Register("CustomLabels", ResolverFunc(func(cand Candidate) (Classification, error) {
		seen = cand
		return Classification{Type: "CustomLabel", Members: []string{"A", "B"}}, nil
	}))

	path := root + "labels/CustomLabels.labels-meta.xml"
	got, err := c.Classify(path, "+<value>x</value>", true)
	require.NoError(t, err)

	assert.Equal(t, Classification{Type: "CustomLabel", Members: []string{"A", "B"}}, got)
	assert.Equal(t, Candidate{
		Path:    path,
		Type:    "CustomLabels",
		Member:  "CustomLabels",
		Diff:    "+<value>x</value>",
		HasDiff: true,
	}, seen)
}

func TestClassify_ResolverErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	c := New(logging.NewNullLogger()).Register("CustomLabels", ResolverFunc(func(Candidate) (Classification, error) {
		return Classification{}, boom
	}))

	_, err := c.Classify(root+"labels/CustomLabels.labels-meta.xml", "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "CustomLabels.labels-meta.xml")
}

func TestClassification_IsZero(t *testing.T) {
	assert.True(t, Classification{}.IsZero())
	assert.True(t, Classification{Type: "  "}.IsZero())
	assert.False(t, Classification{Type: "ApexClass"}.IsZero())
}
