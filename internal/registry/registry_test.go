package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestGlobRegistrySnapshot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app", "main.py"))
	writeFile(t, filepath.Join(dir, "app", "util", "db.py"))
	writeFile(t, filepath.Join(dir, "app", "README.md"))
	writeFile(t, filepath.Join(dir, ".venv", "lib", "mod.py"))

	reg := NewGlobRegistry(dir, []string{"**/*.py"}, []string{".venv/**"})
	got := reg.Snapshot()

	want := []string{
		filepath.Join(dir, "app", "main.py"),
		filepath.Join(dir, "app", "util", "db.py"),
	}
	if len(got) != len(want) {
		t.Fatalf("snapshot = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGlobRegistrySnapshotDeduplicatesOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.py"))

	reg := NewGlobRegistry(dir, []string{"**/*.py", "*.py"}, nil)
	got := reg.Snapshot()
	if len(got) != 1 {
		t.Fatalf("expected one unique match, got %v", got)
	}
}

func TestGlobRegistrySnapshotSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pkg.py"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "real.py"))

	reg := NewGlobRegistry(dir, []string{"*.py"}, nil)
	got := reg.Snapshot()
	if len(got) != 1 || got[0] != filepath.Join(dir, "real.py") {
		t.Fatalf("expected only the regular file, got %v", got)
	}
}
