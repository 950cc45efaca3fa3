package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/vvka-141/sfdelta/internal/changeset"
	"github.com/vvka-141/sfdelta/internal/metadata"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Header is the XML declaration written at the top of every descriptor.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const indent = "    "

// Build converts cs into a descriptor with types and members sorted.
func Build(cs *changeset.ChangeSet, apiVersion string) *metadata.Package {
	pkg := &metadata.Package{
		Xmlns:   sfdelta.MetadataNamespace,
		Version: apiVersion,
	}
	for _, t := range cs.Types() {
		pkg.Types = append(pkg.Types, metadata.PackageType{
			Members: cs.Members(t),
			Name:    t,
		})
	}
	return pkg
}

// Render serializes cs as a descriptor document.
func Render(cs *changeset.ChangeSet, apiVersion string) ([]byte, error) {
	apiVersion = strings.TrimSpace(apiVersion)
	if apiVersion == "" {
		return nil, fmt.Errorf("API version is required: %w", sfdelta.ErrInvalidConfig)
	}

	var buf bytes.Buffer
	buf.WriteString(Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(Build(cs, apiVersion)); err != nil {
		return nil, fmt.Errorf("failed to encode package: %w", err)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
