// Package labels extracts individual custom label names from a label bundle,
// either every declared label or only the labels touched by a diff.
package labels

import (
	"fmt"
	"strings"

	"github.com/vvka-141/sfdelta/internal/classifier"
	"github.com/vvka-141/sfdelta/internal/files/filesystem"
	"github.com/vvka-141/sfdelta/internal/metadata"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// TypeName is the metadata type of a single label inside a bundle.
const TypeName = "CustomLabel"

// structuralPrefixes mark added lines that carry no label field.
var structuralPrefixes = []string{
	"<?xml",
	"<labels>",
	"</labels>",
	"<labels/>",
	"<CustomLabels",
	"</CustomLabels",
}

// Extractor reads label bundles through a filesystem provider.
type Extractor struct {
	fs     filesystem.Provider
	logger sfdelta.Logger
}

// NewExtractor creates an Extractor reading repository files from fs.
func NewExtractor(fs filesystem.Provider, logger sfdelta.Logger) *Extractor {
	return &Extractor{fs: fs, logger: logger}
}

// All returns the full name of every label declared in the bundle at path.
func (e *Extractor) All(path string) ([]string, error) {
	bundle, err := e.load(path)
	if err != nil {
		return nil, err
	}
	return dedupe(bundle.FullNames()), nil
}

// Changed returns the labels touched by the added lines of diff.
//
// A <fullName> line names a label directly. Field lines inside an added
// <labels> record belong to that new record and are not looked up. Any
// other field line is attributed to the first label in the bundle whose
// field of the same name has the same value; lines that cannot be
// attributed are skipped.
func (e *Extractor) Changed(path, diff string) ([]string, error) {
	var (
		bundle   *metadata.CustomLabels
		names    []string
		inRecord bool
	)

	for _, line := range strings.Split(diff, "\n") {
		line = strings.TrimRight(line, "\r")
		if !isAddedLine(line) {
			// Context lines and hunk headers end an added record.
			if !strings.HasPrefix(line, "-") {
				inRecord = false
			}
			continue
		}
		switch trimmed := strings.TrimSpace(line[1:]); {
		case strings.HasPrefix(trimmed, "<labels>"):
			inRecord = true
			continue
		case strings.HasPrefix(trimmed, "</labels>"):
			inRecord = false
			continue
		}

		content, ok := addedContent(line)
		if !ok {
			continue
		}

		field, value, err := metadata.DecodeElement(content)
		if err != nil {
			e.logger.Verbose("skipping unparsable line in %s: %s", path, content)
			continue
		}
		if field == "fullName" {
			names = append(names, value)
			continue
		}
		if inRecord {
			continue
		}

		if bundle == nil {
			if bundle, err = e.load(path); err != nil {
				return nil, err
			}
		}
		label, found := bundle.FindByField(field, value)
		if !found || label.FullName() == "" {
			e.logger.Verbose("cannot attribute %s change in %s: %s", field, path, content)
			continue
		}
		names = append(names, label.FullName())
	}

	return dedupe(names), nil
}

// Resolve implements classifier.Resolver for the CustomLabels bundle type.
// Without diff text every label in the bundle is listed.
func (e *Extractor) Resolve(c classifier.Candidate) (classifier.Classification, error) {
	var (
		names []string
		err   error
	)
	if c.HasDiff {
		names, err = e.Changed(c.Path, c.Diff)
	} else {
		names, err = e.All(c.Path)
	}
	if err != nil {
		return classifier.Classification{}, err
	}
	return classifier.Classification{Type: TypeName, Members: names}, nil
}

func (e *Extractor) load(path string) (*metadata.CustomLabels, error) {
	content, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label bundle %s: %w", path, err)
	}
	return metadata.DecodeCustomLabels(content, path)
}

func isAddedLine(line string) bool {
	return strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++")
}

// addedContent returns the trimmed text of an added diff line.
func addedContent(line string) (string, bool) {
	line = strings.TrimRight(line, "\r")
	if !isAddedLine(line) {
		return "", false
	}
	content := strings.TrimSpace(line[1:])
	if content == "" {
		return "", false
	}
	for _, prefix := range structuralPrefixes {
		if strings.HasPrefix(content, prefix) {
			return "", false
		}
	}
	return content, true
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

var _ classifier.Resolver = (*Extractor)(nil)
