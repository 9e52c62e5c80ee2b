package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "rewatch.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
interval: 250ms
watch:
  include: ["**/*.py"]
  exclude: [".venv/**"]
  extensions:
    .pyc: .py
child:
  workdir: app
  env:
    APP_DEBUG: "1"
`)

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Interval.Duration != 250*time.Millisecond {
		t.Fatalf("unexpected interval: %s", cfg.Interval.Duration)
	}
	if got := cfg.Watch.Include; len(got) != 1 || got[0] != "**/*.py" {
		t.Fatalf("unexpected include patterns: %v", got)
	}
	wantWorkdir := filepath.Join(dir, "app")
	if cfg.Child.ResolvedWorkdir != wantWorkdir {
		t.Fatalf("resolved workdir = %q, want %q", cfg.Child.ResolvedWorkdir, wantWorkdir)
	}
	if cfg.Child.Env["APP_DEBUG"] != "1" {
		t.Fatalf("unexpected child env: %v", cfg.Child.Env)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "interval: 1s\nwatchers: []\n")

	if _, err := Load(path, true); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "rewatch.yaml")

	if _, err := Load(missing, true); err == nil {
		t.Fatal("expected error when an explicit config path is missing")
	}

	cfg, err := Load(missing, false)
	if err != nil {
		t.Fatalf("load with optional config: %v", err)
	}
	if cfg.Interval.Duration != time.Second {
		t.Fatalf("expected default interval, got %s", cfg.Interval.Duration)
	}
	if len(cfg.Watch.Include) == 0 {
		t.Fatal("expected default include patterns")
	}
}

func TestLoadEnvFileMergesWithInlineOverrides(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("FROM_FILE=file\nSHARED=file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	path := writeConfig(t, dir, `
child:
  envFile: .env
  env:
    SHARED: inline
`)

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Child.Env["FROM_FILE"] != "file" {
		t.Fatalf("env file entry missing: %v", cfg.Child.Env)
	}
	if cfg.Child.Env["SHARED"] != "inline" {
		t.Fatalf("inline env should win over env file: %v", cfg.Child.Env)
	}
	if !filepath.IsAbs(cfg.Child.EnvFromFile) {
		t.Fatalf("envFile should be resolved to an absolute path: %q", cfg.Child.EnvFromFile)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "child:\n  envFile: nope.env\n")

	_, err := Load(path, true)
	if err == nil {
		t.Fatal("expected error for missing env file")
	}
	if !strings.Contains(err.Error(), "child.envFile") {
		t.Fatalf("error should name the field: %v", err)
	}
}
