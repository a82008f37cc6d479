// Package ignore implements the walk exclusion policy: version-control
// directories are always skipped, and callers may add their own glob
// patterns (including ** patterns) from configuration.
package ignore

import (
	"path/filepath"
	"strings"
)

// vcsDirs are always excluded, wherever they appear in the tree.
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// Matcher decides which paths the analyzer walk should skip.
type Matcher struct {
	patterns []string
}

// NewMatcher creates a Matcher with additional exclusion patterns, which
// are matched against slash-separated paths relative to the project root.
func NewMatcher(patterns []string) *Matcher {
	return &Matcher{patterns: patterns}
}

// Match reports whether the relative path should be skipped. name is the
// path's base name.
func (m *Matcher) Match(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, part := range strings.Split(relPath, "/") {
		if vcsDirs[part] {
			return true
		}
	}
	for _, pattern := range m.patterns {
		if matchPattern(pattern, relPath) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, relPath string) bool {
	pattern = strings.TrimSuffix(strings.TrimSpace(pattern), "/")
	if pattern == "" {
		return false
	}

	if strings.Contains(pattern, "**") {
		return matchParts(splitPath(pattern), splitPath(relPath))
	}

	if strings.Contains(pattern, "/") {
		matched, _ := filepath.Match(pattern, relPath)
		return matched
	}

	// Bare patterns match any path component.
	for _, part := range splitPath(relPath) {
		if matched, _ := filepath.Match(pattern, part); matched {
			return true
		}
	}
	return false
}

func matchParts(patternParts, pathParts []string) bool {
	if len(patternParts) == 0 {
		return len(pathParts) == 0
	}

	if patternParts[0] == "**" {
		rest := patternParts[1:]
		for i := 0; i <= len(pathParts); i++ {
			if matchParts(rest, pathParts[i:]) {
				return true
			}
		}
		return false
	}

	if len(pathParts) == 0 {
		return false
	}

	matched, _ := filepath.Match(patternParts[0], pathParts[0])
	if !matched {
		return false
	}
	return matchParts(patternParts[1:], pathParts[1:])
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(filepath.ToSlash(path), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
