package registry

import (
	"os"
	"path/filepath"
	"testing"
)

type staticRegistry []string

func (s staticRegistry) Snapshot() []string {
	return append([]string(nil), s...)
}

func TestEnumeratorYieldsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	writeFile(t, path)

	e := NewEnumerator(staticRegistry{path}, nil)
	got := e.Files()
	if len(got) != 1 || got[0] != path {
		t.Fatalf("files = %v, want [%s]", got, path)
	}
}

func TestEnumeratorResolvesArchiveMembers(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.egg")
	writeFile(t, archive)

	member := filepath.Join(archive, "pkg", "mod.py")
	e := NewEnumerator(staticRegistry{member}, nil)
	got := e.Files()
	if len(got) != 1 || got[0] != archive {
		t.Fatalf("archive member should resolve to the archive, got %v", got)
	}
}

func TestEnumeratorFixedPointOnMissingPath(t *testing.T) {
	// Three directory levels deep, nothing on disk: the upward walk must
	// terminate at the root fixed point and yield nothing.
	missing := filepath.Join(string(os.PathSeparator), "rewatch-nonexistent", "a", "b", "c.py")

	e := NewEnumerator(staticRegistry{missing}, nil)
	if got := e.Files(); len(got) != 0 {
		t.Fatalf("expected no files for unresolvable path, got %v", got)
	}
}

func TestEnumeratorSkipsEmptyCandidates(t *testing.T) {
	e := NewEnumerator(staticRegistry{""}, nil)
	if got := e.Files(); len(got) != 0 {
		t.Fatalf("expected no files, got %v", got)
	}
}

func TestEnumeratorRewritesCompiledSuffix(t *testing.T) {
	dir := t.TempDir()
	compiled := filepath.Join(dir, "mod.pyc")
	writeFile(t, compiled)

	e := NewEnumerator(staticRegistry{compiled}, map[string]string{".pyc": ".py", ".pyo": ".py"})
	got := e.Files()
	want := filepath.Join(dir, "mod.py")
	if len(got) != 1 || got[0] != want {
		t.Fatalf("files = %v, want [%s]", got, want)
	}
}

func TestEnumeratorKeepsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	writeFile(t, path)

	e := NewEnumerator(staticRegistry{path, path}, nil)
	if got := e.Files(); len(got) != 2 {
		t.Fatalf("enumerator should not deduplicate, got %v", got)
	}
}
