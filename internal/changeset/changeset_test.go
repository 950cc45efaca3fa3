package changeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_NeverCreatesEmptyType(t *testing.T) {
	cs := New()
	cs.Add("ApexClass")
	cs.Add("ApexPage", "", "   ")
	cs.Add("", "Foo")
	cs.Add("  ", "Foo")

	assert.Equal(t, 0, cs.Len())
	assert.Empty(t, cs.Types())
}

func TestAdd_Deduplicates(t *testing.T) {
	cs := New()
	cs.Add("ApexClass", "Foo", "Bar")
	cs.Add("ApexClass", "Foo")

	assert.Equal(t, []string{"Bar", "Foo"}, cs.Members("ApexClass"))
	assert.Equal(t, 2, cs.Size())
	assert.True(t, cs.Has("ApexClass", "Foo"))
	assert.False(t, cs.Has("ApexClass", "Baz"))
	assert.False(t, cs.Has("ApexTrigger", "Foo"))
}

func TestTypes_Sorted(t *testing.T) {
	cs := New()
	cs.Add("Report", "F/R")
	cs.Add("ApexClass", "Foo")
	cs.Add("CustomField", "Account.X__c")

	assert.Equal(t, []string{"ApexClass", "CustomField", "Report"}, cs.Types())
	assert.Empty(t, cs.Members("Missing"))
}

func TestClone_IsIndependent(t *testing.T) {
	cs := New()
	cs.Add("ApexClass", "Foo")

	cp := cs.Clone()
	cp.Add("ApexClass", "Bar")
	cp.Add("ApexPage", "Home")

	assert.Equal(t, []string{"Foo"}, cs.Members("ApexClass"))
	assert.Equal(t, 1, cs.Len())
	assert.Equal(t, 2, cp.Len())
}

func TestEqual(t *testing.T) {
	a := New()
	a.Add("ApexClass", "Foo", "Bar")
	b := New()
	b.Add("ApexClass", "Bar")
	b.Add("ApexClass", "Foo")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	b.Add("ApexClass", "Baz")
	assert.False(t, a.Equal(b))

	c := New()
	c.Add("ApexTrigger", "Foo", "Bar")
	assert.False(t, a.Equal(c))
}
