package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// velox.toml supplies per-project parse defaults:
//
//	[package]
//	name = "app"
//
//	[parse]
//	source-type = "module"
//	preserve-parens = false
//	jobs = 4
//
// Every section and key is optional; the command line overrides all of it.

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Parse   parseSection  `toml:"parse"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type parseSection struct {
	SourceType     string `toml:"source-type"`
	PreserveParens *bool  `toml:"preserve-parens"`
	Jobs           int    `toml:"jobs"`
}

func findVeloxToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "velox.toml")
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

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findVeloxToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	switch cfg.Parse.SourceType {
	case "", "script", "module", "unambiguous":
	default:
		return nil, true, fmt.Errorf("%s: unknown [parse].source-type: %s", manifestPath, cfg.Parse.SourceType)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
