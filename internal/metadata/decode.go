package metadata

import (
	"bytes"
	"encoding/xml"
	"io"
)

// DecodePackage parses a package descriptor.
// path is used for error reporting only.
func DecodePackage(r io.Reader, path string) (*Package, error) {
	var pkg Package
	if err := xml.NewDecoder(r).Decode(&pkg); err != nil {
		return nil, wrapXMLError(err, path, "Package")
	}
	return &pkg, nil
}

// DecodeCustomLabels parses a label bundle.
// path is used for error reporting only.
func DecodeCustomLabels(content []byte, path string) (*CustomLabels, error) {
	var labels CustomLabels
	if err := xml.NewDecoder(bytes.NewReader(content)).Decode(&labels); err != nil {
		return nil, wrapXMLError(err, path, "CustomLabels")
	}
	return &labels, nil
}

// DecodeElement parses a single self-contained element such as
// <value>Hello</value>, returning its local name and character data.
func DecodeElement(fragment string) (name, value string, err error) {
	var field LabelField
	if err := xml.Unmarshal([]byte(fragment), &field); err != nil {
		return "", "", err
	}
	return field.XMLName.Local, field.Value, nil
}
