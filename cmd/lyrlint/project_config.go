package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig is the optional lyrlint.toml, found by upward search from
// the working directory. Every field is optional; a missing file means
// defaults everywhere.
type projectConfig struct {
	Lint lintSection `toml:"lint"`
}

type lintSection struct {
	// Disable lists rule codes suppressed for the whole run (the global
	// suppression tier, merged with --disable).
	Disable []string `toml:"disable"`
	// Acronyms extends the all-caps allow-list.
	Acronyms []string `toml:"acronyms"`
	// Paths are linted when the command gets no path arguments.
	Paths []string `toml:"paths"`
}

func findLyrlintToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lyrlint.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectConfig resolves the config: an explicit --toml path wins,
// otherwise the upward search; no file at all is not an error.
func loadProjectConfig(tomlFlag string) (projectConfig, error) {
	var cfg projectConfig
	path := tomlFlag
	if path == "" {
		found, ok, err := findLyrlintToml(".")
		if err != nil || !ok {
			return cfg, err
		}
		path = found
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
