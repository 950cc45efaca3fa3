package metadata

import (
	"encoding/xml"
)

// Package is the root of a package descriptor.
type Package struct {
	XMLName xml.Name      `xml:"Package"`
	Xmlns   string        `xml:"xmlns,attr,omitempty"`
	Types   []PackageType `xml:"types"`
	Version string        `xml:"version,omitempty"`
}

// PackageType is one <types> block: members first, then the type name.
type PackageType struct {
	Members []string `xml:"members"`
	Name    string   `xml:"name"`
}

// CustomLabels is the root of a label bundle.
type CustomLabels struct {
	XMLName xml.Name      `xml:"CustomLabels"`
	Labels  []CustomLabel `xml:"labels"`
}

// CustomLabel keeps every child element of a <labels> record so any field
// can be searched by element name.
type CustomLabel struct {
	Fields []LabelField `xml:",any"`
}

// LabelField is one child element of a <labels> record.
type LabelField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Field returns the value of the first field named name.
func (l CustomLabel) Field(name string) (string, bool) {
	for _, f := range l.Fields {
		if f.XMLName.Local == name {
			return f.Value, true
		}
	}
	return "", false
}

// FullName returns the label's fullName field.
func (l CustomLabel) FullName() string {
	v, _ := l.Field("fullName")
	return v
}

// FullNames returns every declared label's full name in document order.
// Labels without a fullName are omitted.
func (c *CustomLabels) FullNames() []string {
	names := make([]string, 0, len(c.Labels))
	for _, l := range c.Labels {
		if n := l.FullName(); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// FindByField returns the first label whose field name has exactly value.
func (c *CustomLabels) FindByField(name, value string) (CustomLabel, bool) {
	for _, l := range c.Labels {
		for _, f := range l.Fields {
			if f.XMLName.Local == name && f.Value == value {
				return l, true
			}
		}
	}
	return CustomLabel{}, false
}
