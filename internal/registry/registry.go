// Package registry enumerates the set of source files the watch loop
// should track. The Registry interface abstracts the source of candidate
// paths so the loop can be driven by a fixed list in tests.
package registry

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
)

// Registry reports candidate file paths. Snapshot returns a fresh copy on
// every call; implementations must be safe against concurrent mutation of
// whatever backs them.
type Registry interface {
	Snapshot() []string
}

// GlobRegistry walks a root directory with doublestar include and exclude
// patterns. Patterns are interpreted relative to the root.
type GlobRegistry struct {
	Root    string
	Include []string
	Exclude []string
}

// NewGlobRegistry constructs a registry rooted at root.
func NewGlobRegistry(root string, include, exclude []string) *GlobRegistry {
	return &GlobRegistry{
		Root:    root,
		Include: append([]string(nil), include...),
		Exclude: append([]string(nil), exclude...),
	}
}

// Snapshot returns the current match set as absolute paths, sorted and
// de-duplicated. Pattern failures degrade to an empty contribution.
func (g *GlobRegistry) Snapshot() []string {
	root, err := filepath.Abs(g.Root)
	if err != nil {
		return nil
	}

	var matches []string
	for _, pattern := range g.Include {
		found, err := doublestar.FilepathGlob(filepath.Join(root, filepath.FromSlash(pattern)), doublestar.WithFilesOnly())
		if err != nil {
			continue
		}
		matches = append(matches, found...)
	}

	matches = lo.Filter(matches, func(path string, _ int) bool {
		return !g.excluded(root, path)
	})
	matches = lo.Uniq(matches)
	sort.Strings(matches)
	return matches
}

func (g *GlobRegistry) excluded(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range g.Exclude {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}
