package classifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/sfdelta/internal/taxonomy"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// ErrNoResolver indicates an in-file type has no registered content resolver.
var ErrNoResolver = errors.New("no content resolver registered")

// Classification is the metadata type and members contributed by one file.
// The zero value means the file is not classifiable.
type Classification struct {
	Type    string
	Members []string
}

// IsZero reports whether the file was left unclassified.
func (c Classification) IsZero() bool {
	return strings.TrimSpace(c.Type) == ""
}

// Candidate is a path-derived classification awaiting member resolution.
type Candidate struct {
	Path    string
	Type    string
	Member  string
	Diff    string
	HasDiff bool
}

// Resolver turns a candidate into the final classification.
type Resolver interface {
	Resolve(c Candidate) (Classification, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(c Candidate) (Classification, error)

// Resolve calls f(c).
func (f ResolverFunc) Resolve(c Candidate) (Classification, error) {
	return f(c)
}

// PathResolver keeps the member derived from the path.
var PathResolver Resolver = ResolverFunc(func(c Candidate) (Classification, error) {
	return Classification{Type: c.Type, Members: []string{c.Member}}, nil
})

// Classifier classifies changed paths using the static taxonomy.
// A Classifier is safe for concurrent use once configured.
type Classifier struct {
	content map[string]Resolver
	logger  sfdelta.Logger
}

// New creates a Classifier. Content resolvers for in-file types are added
// with Register.
func New(logger sfdelta.Logger) *Classifier {
	return &Classifier{
		content: make(map[string]Resolver),
		logger:  logger,
	}
}

// Register sets the content resolver used for the in-file type typeName.
func (c *Classifier) Register(typeName string, r Resolver) *Classifier {
	c.content[typeName] = r
	return c
}

// Classify maps one repository-relative path to its classification.
// diff is the file's unified diff text; hasDiff reports whether the caller
// has one at all.
func (c *Classifier) Classify(filePath, diff string, hasDiff bool) (Classification, error) {
	cand, ok := c.candidate(filePath)
	if !ok {
		c.logger.Verbose("not metadata: %s", filePath)
		return Classification{}, nil
	}
	cand.Diff = diff
	cand.HasDiff = hasDiff

	resolver, err := c.resolverFor(cand.Type)
	if err != nil {
		return Classification{}, err
	}

	result, err := resolver.Resolve(cand)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to resolve members of %s: %w", filePath, err)
	}
	c.logger.Verbose("%s -> %s %v", filePath, result.Type, result.Members)
	return result, nil
}

func (c *Classifier) resolverFor(typeName string) (Resolver, error) {
	if !taxonomy.IsInFile(typeName) {
		return PathResolver, nil
	}
	r, ok := c.content[typeName]
	if !ok {
		return nil, fmt.Errorf("%s: %w", typeName, ErrNoResolver)
	}
	return r, nil
}

// candidate derives the type and provisional member from the path alone.
func (c *Classifier) candidate(filePath string) (Candidate, bool) {
	p := strings.ReplaceAll(filePath, "\\", "/")
	segments := strings.Split(strings.Trim(p, "/"), "/")
	if len(segments) < 2 {
		return Candidate{}, false
	}

	keyAt, typeName := matchKey(segments)
	if keyAt < 0 {
		return Candidate{}, false
	}

	fileName := segments[len(segments)-1]
	member, _, _ := strings.Cut(fileName, ".")
	if member == "" {
		return Candidate{}, false
	}
	parentAt := len(segments) - 2
	parent := segments[parentAt]

	if taxonomy.IsBundle(typeName) && keyAt+1 < len(segments)-1 {
		member = segments[keyAt+1]
	}

	// Nested folders are addressed by their full path below the type
	// directory (Sales/Q1/Pipeline), which is how the platform names
	// members of folders inside folders.
	if taxonomy.IsFolderScoped(typeName) && parentAt > keyAt {
		member = strings.Join(segments[keyAt+1:parentAt+1], "/") + "/" + member
	}

	if childType, ok := taxonomy.ChildTypeFor(typeName, parent); ok {
		// The parent object is the segment right after the key and must be
		// a directory of its own, not the child directory itself.
		if keyAt+1 >= parentAt {
			c.logger.Verbose("cannot find parent of %s in %s", childType, filePath)
			return Candidate{}, false
		}
		typeName = childType
		member = segments[keyAt+1] + "." + member
	}

	return Candidate{Path: filePath, Type: typeName, Member: member}, true
}

var entries = taxonomy.Entries()

// matchKey returns the index of the directory segment matching the first
// registry key in declared order. The file name itself never matches.
func matchKey(segments []string) (int, string) {
	dirs := segments[:len(segments)-1]
	for _, e := range entries {
		for i, s := range dirs {
			if s == e.DirectoryKey {
				return i, e.TypeName
			}
		}
	}
	return -1, ""
}
