package project

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterSource keeps the paths that lie under root and match none of the
// ignore patterns. Matching is by whole path segments, so root "force-app"
// does not select "force-app-old/...". An empty root keeps every path.
func FilterSource(paths []string, root string, ignore []string) []string {
	root = strings.Trim(path.Clean("/"+toSlash(root)), "/")

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		normalized := strings.TrimPrefix(toSlash(p), "/")
		if normalized == "" {
			continue
		}
		if root != "" && normalized != root && !strings.HasPrefix(normalized, root+"/") {
			continue
		}
		if isIgnored(normalized, ignore) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ValidatePatterns checks that every ignore pattern is a valid glob.
func ValidatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %w", pat, err)
		}
	}
	return nil
}

func isIgnored(p string, ignore []string) bool {
	for _, pat := range ignore {
		if matched, matchErr := doublestar.Match(pat, p); matchErr == nil && matched {
			return true
		}
	}
	return false
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
