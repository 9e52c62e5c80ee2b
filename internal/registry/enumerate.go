package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Enumerator turns registry candidates into watchable file paths. A
// candidate that does not exist as a regular file is resolved upward
// through its parent directories until an existing file is found (a path
// inside an archive resolves to the archive itself); candidates that never
// resolve are skipped. Resolved paths with a compiled-artifact suffix are
// rewritten to their source suffix.
type Enumerator struct {
	reg      Registry
	suffixes []string
	rewrites map[string]string
}

// NewEnumerator constructs an enumerator over reg. extensions maps
// compiled suffixes to source suffixes.
func NewEnumerator(reg Registry, extensions map[string]string) *Enumerator {
	e := &Enumerator{reg: reg, rewrites: make(map[string]string, len(extensions))}
	for from, to := range extensions {
		e.rewrites[from] = to
		e.suffixes = append(e.suffixes, from)
	}
	sort.Strings(e.suffixes)
	return e
}

// Files computes the current watch set. It recomputes fully on every call
// and may yield duplicate paths; callers collapse them. Nothing here
// errors: every failure degrades to skipping the candidate.
func (e *Enumerator) Files() []string {
	candidates := e.reg.Snapshot()
	files := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		resolved, ok := resolveFile(candidate)
		if !ok {
			continue
		}
		files = append(files, e.rewrite(resolved))
	}
	return files
}

// resolveFile walks a path upward until it names an existing regular
// file. The walk stops at the fixed point where Dir no longer shrinks the
// path, so a fully nonexistent candidate terminates instead of looping.
func resolveFile(path string) (string, bool) {
	for !isFile(path) {
		parent := filepath.Dir(path)
		if parent == path {
			return "", false
		}
		path = parent
	}
	return path, true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (e *Enumerator) rewrite(path string) string {
	for _, from := range e.suffixes {
		if strings.HasSuffix(path, from) {
			return strings.TrimSuffix(path, from) + e.rewrites[from]
		}
	}
	return path
}
