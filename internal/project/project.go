// Package project reads and updates the sfdx-project.json project
// descriptor.
package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vvka-141/sfdelta/internal/files/filesystem"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

var (
	// ErrNoPackageDirectories indicates the project declares no package directories.
	ErrNoPackageDirectories = fmt.Errorf("package directories not specified: %w", sfdelta.ErrInvalidConfig)

	// ErrInvalidDefault indicates the only package directory is marked non-default.
	ErrInvalidDefault = fmt.Errorf("the only package directory must be the default: %w", sfdelta.ErrInvalidConfig)

	// ErrAmbiguousDefault indicates more than one package directory is the default.
	ErrAmbiguousDefault = fmt.Errorf("there can only be 1 default package directory: %w", sfdelta.ErrInvalidConfig)

	// ErrNoDefaultPackageDirectory indicates no package directory is the default.
	ErrNoDefaultPackageDirectory = fmt.Errorf("default package directory not found: %w", sfdelta.ErrInvalidConfig)

	// ErrNoSourceAPIVersion indicates the project has no sourceApiVersion to update.
	ErrNoSourceAPIVersion = errors.New("sourceApiVersion not found in project file")

	// ErrAlreadyLatest indicates sourceApiVersion already equals the requested version.
	ErrAlreadyLatest = errors.New("project already has the latest API version")
)

// PackageDirectory is one entry of packageDirectories.
type PackageDirectory struct {
	Path    string `json:"path"`
	Default *bool  `json:"default,omitempty"`
}

// Project is the subset of sfdx-project.json this tool reads.
type Project struct {
	PackageDirectories []PackageDirectory `json:"packageDirectories"`
	SourceAPIVersion   string             `json:"sourceApiVersion,omitempty"`
	Namespace          string             `json:"namespace,omitempty"`
}

// Load reads and parses the project file at path.
func Load(fs filesystem.Provider, path string) (*Project, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	var p Project
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project file %s: %w (%w)", path, err, sfdelta.ErrInvalidConfig)
	}
	return &p, nil
}

// DefaultPackageDirectory returns the path of the default package directory.
//
// A single directory is the default unless it says otherwise. With several
// directories exactly one must set default to true.
func (p *Project) DefaultPackageDirectory() (string, error) {
	dirs := p.PackageDirectories
	switch len(dirs) {
	case 0:
		return "", ErrNoPackageDirectories
	case 1:
		if dirs[0].Default != nil && !*dirs[0].Default {
			return "", ErrInvalidDefault
		}
		if dirs[0].Path == "" {
			return "", ErrNoDefaultPackageDirectory
		}
		return dirs[0].Path, nil
	}

	var (
		found string
		count int
	)
	for _, d := range dirs {
		if d.Default != nil && *d.Default {
			found = d.Path
			count++
		}
	}
	switch {
	case count > 1:
		return "", ErrAmbiguousDefault
	case count == 0 || found == "":
		return "", ErrNoDefaultPackageDirectory
	}
	return found, nil
}

// UpdateSourceAPIVersion rewrites sourceApiVersion in the project file at
// path. Unknown keys are kept; keys are written sorted with 4-space indent.
func UpdateSourceAPIVersion(fs filesystem.Provider, path, version string) error {
	content, err := fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse project file %s: %w (%w)", path, err, sfdelta.ErrInvalidConfig)
	}

	current, _ := doc["sourceApiVersion"].(string)
	if current == "" {
		return ErrNoSourceAPIVersion
	}
	if current == version {
		return ErrAlreadyLatest
	}
	doc["sourceApiVersion"] = version

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode project file: %w", err)
	}
	// Encode terminates with a newline; the file ends without one.
	out := bytes.TrimRight(buf.Bytes(), "\n")

	if err := fs.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write project file %s: %w", path, err)
	}
	return nil
}
