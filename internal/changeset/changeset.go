// Package changeset holds the type-to-members mapping built from changed
// files and the aggregator that builds it.
package changeset

import (
	"sort"
	"strings"
)

// ChangeSet maps metadata type names to their set of member names.
// A type is present only while it has at least one member.
// The zero value is not usable; create one with New.
type ChangeSet struct {
	types map[string]map[string]struct{}
}

// New returns an empty ChangeSet.
func New() *ChangeSet {
	return &ChangeSet{types: make(map[string]map[string]struct{})}
}

// Add records members under typeName. Blank names are ignored, so adding
// no usable member never creates the type.
func (c *ChangeSet) Add(typeName string, members ...string) {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return
	}
	for _, m := range members {
		if strings.TrimSpace(m) == "" {
			continue
		}
		set, ok := c.types[typeName]
		if !ok {
			set = make(map[string]struct{})
			c.types[typeName] = set
		}
		set[m] = struct{}{}
	}
}

// Has reports whether member is recorded under typeName.
func (c *ChangeSet) Has(typeName, member string) bool {
	_, ok := c.types[typeName][member]
	return ok
}

// Types returns the type names in lexicographic order.
func (c *ChangeSet) Types() []string {
	out := make([]string, 0, len(c.types))
	for t := range c.types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Members returns the members of typeName in lexicographic order.
func (c *ChangeSet) Members(typeName string) []string {
	set := c.types[typeName]
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of types.
func (c *ChangeSet) Len() int {
	return len(c.types)
}

// Size returns the total number of members across all types.
func (c *ChangeSet) Size() int {
	n := 0
	for _, set := range c.types {
		n += len(set)
	}
	return n
}

// Clone returns an independent copy.
func (c *ChangeSet) Clone() *ChangeSet {
	out := New()
	for t, set := range c.types {
		cp := make(map[string]struct{}, len(set))
		for m := range set {
			cp[m] = struct{}{}
		}
		out.types[t] = cp
	}
	return out
}

// Equal reports whether both sets hold the same types and members.
func (c *ChangeSet) Equal(other *ChangeSet) bool {
	if other == nil || len(c.types) != len(other.types) {
		return false
	}
	for t, set := range c.types {
		theirs, ok := other.types[t]
		if !ok || len(theirs) != len(set) {
			return false
		}
		for m := range set {
			if _, ok := theirs[m]; !ok {
				return false
			}
		}
	}
	return true
}
