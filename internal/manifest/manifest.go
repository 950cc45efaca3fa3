// Package manifest reads, merges and writes package descriptors
// (package.xml).
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/sfdelta/internal/changeset"
	"github.com/vvka-141/sfdelta/internal/files/filesystem"
	"github.com/vvka-141/sfdelta/internal/metadata"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Parse decodes a descriptor from r. source names it in errors.
func Parse(r io.Reader, source string) (*metadata.Package, error) {
	return metadata.DecodePackage(r, source)
}

// Load reads and parses the descriptor at path.
func Load(fs filesystem.Provider, path string) (*metadata.Package, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(bytes.NewReader(content), path)
}

// Merge returns a copy of cs extended with every member of pkg.
// Wildcard members cannot be represented in a ChangeSet and are skipped
// with a warning; the number skipped is returned. cs is not modified.
func Merge(cs *changeset.ChangeSet, pkg *metadata.Package, logger sfdelta.Logger) (*changeset.ChangeSet, int) {
	out := cs.Clone()
	if pkg == nil {
		return out, 0
	}

	skipped := 0
	for _, t := range pkg.Types {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			logger.Warn("skipping <types> block without a name")
			continue
		}
		for _, m := range t.Members {
			m = strings.TrimSpace(m)
			if strings.Contains(m, sfdelta.WildcardMarker) {
				logger.Warn("skipping wildcard member %q of %s", m, name)
				skipped++
				continue
			}
			out.Add(name, m)
		}
	}
	return out, skipped
}

// RequiresApexTests reports whether deploying pkg runs Apex tests, that is
// whether it contains Apex classes or triggers.
func RequiresApexTests(pkg *metadata.Package) bool {
	if pkg == nil {
		return false
	}
	for _, t := range pkg.Types {
		switch strings.TrimSpace(t.Name) {
		case "ApexClass", "ApexTrigger":
			if len(t.Members) > 0 {
				return true
			}
		}
	}
	return false
}
