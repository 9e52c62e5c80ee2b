package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a rewatch manifest from the provided path. When required is
// false a missing file yields an all-defaults configuration, so the tool
// works without a manifest at all.
func Load(path string, required bool) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	var doc Config
	f, err := os.Open(absPath)
	switch {
	case err == nil:
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		decoder.KnownFields(true)
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", absPath, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		// No manifest; run on defaults.
	default:
		return nil, fmt.Errorf("open config file: %w", err)
	}

	baseDir := filepath.Dir(absPath)
	doc.Child.ResolvedWorkdir = resolveWorkdir(baseDir, os.ExpandEnv(doc.Child.Workdir))

	if err := doc.resolveChildEnv(); err != nil {
		return nil, err
	}

	doc.ApplyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}
	return &doc, nil
}

// resolveChildEnv merges env-file entries with inline overrides; inline
// values win.
func (c *Config) resolveChildEnv() error {
	var inlineEnv map[string]string
	if len(c.Child.Env) > 0 {
		inlineEnv = make(map[string]string, len(c.Child.Env))
		for k, v := range c.Child.Env {
			inlineEnv[k] = os.ExpandEnv(v)
		}
	}

	var fileEnv map[string]string
	if c.Child.EnvFromFile != "" {
		expanded := os.ExpandEnv(c.Child.EnvFromFile)
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Clean(filepath.Join(c.Child.ResolvedWorkdir, expanded))
		}
		c.Child.EnvFromFile = expanded

		var err error
		fileEnv, err = godotenv.Read(expanded)
		if err != nil {
			return fmt.Errorf("child.envFile: load %q: %w", expanded, err)
		}
	}

	var merged map[string]string
	if len(fileEnv) > 0 {
		merged = make(map[string]string, len(fileEnv))
		for k, v := range fileEnv {
			merged[k] = v
		}
	}
	if len(inlineEnv) > 0 {
		if merged == nil {
			merged = make(map[string]string, len(inlineEnv))
		}
		for k, v := range inlineEnv {
			merged[k] = v
		}
	}
	c.Child.Env = merged
	return nil
}

func resolveWorkdir(base, workdir string) string {
	if workdir == "" {
		return base
	}
	if filepath.IsAbs(workdir) {
		return filepath.Clean(workdir)
	}
	return filepath.Clean(filepath.Join(base, workdir))
}
