// Package taxonomy holds the static registry that maps Salesforce DX source
// directories to metadata type names, together with the special-case sets
// that change how a member name is derived:
//
//   - folder-scoped types (member is <folder>/<name>)
//   - child-item types (member is <parent>.<child>, type is the child type)
//   - in-file types (members are read from the file contents)
//   - bundle types (member is the bundle directory)
//
// All data is immutable and safe for concurrent use.
package taxonomy

// Entry maps one container directory to its metadata type.
type Entry struct {
	DirectoryKey string
	TypeName     string
}

// ChildType maps a nested directory beneath a parent type to the child type.
type ChildType struct {
	DirectoryKey string
	TypeName     string
}

var byKey = func() map[string]string {
	m := make(map[string]string, len(registry))
	for _, e := range registry {
		if _, dup := m[e.DirectoryKey]; dup {
			panic("taxonomy: duplicate directory key " + e.DirectoryKey)
		}
		m[e.DirectoryKey] = e.TypeName
	}
	return m
}()

// Lookup returns the type stored under directoryKey.
func Lookup(directoryKey string) (string, bool) {
	t, ok := byKey[directoryKey]
	return t, ok
}

// Entries returns a copy of the registry in declared order.
func Entries() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// IsFolderScoped reports whether members of typeName include their folder.
func IsFolderScoped(typeName string) bool {
	_, ok := folderScoped[typeName]
	return ok
}

// IsInFile reports whether members of typeName must be read from file contents.
func IsInFile(typeName string) bool {
	_, ok := inFile[typeName]
	return ok
}

// IsBundle reports whether members of typeName are whole directories.
func IsBundle(typeName string) bool {
	_, ok := bundles[typeName]
	return ok
}

// ChildTypesFor returns the ordered child types of typeName, or nil.
func ChildTypesFor(typeName string) []ChildType {
	children := childItems[typeName]
	if len(children) == 0 {
		return nil
	}
	out := make([]ChildType, len(children))
	copy(out, children)
	return out
}

// ChildTypeFor returns the child type stored under directoryKey for parentType.
func ChildTypeFor(parentType, directoryKey string) (string, bool) {
	for _, c := range childItems[parentType] {
		if c.DirectoryKey == directoryKey {
			return c.TypeName, true
		}
	}
	return "", false
}
