package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the loader walks up the directory tree for.
const ManifestName = "druim.toml"

// DefaultEntry is used when the manifest does not name an entry file.
const DefaultEntry = "main.dm"

// Manifest is a located and parsed druim.toml.
type Manifest struct {
	Path   string // absolute path to the manifest file
	Root   string // directory containing it
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
	Output  OutputConfig  `toml:"output"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type RunConfig struct {
	// Entry is the file `druim run` executes, relative to Root.
	Entry string `toml:"entry"`
}

type OutputConfig struct {
	// Color is the project-level color preference: auto, on or off.
	// An explicit --color flag wins over it.
	Color string `toml:"color"`
}

// Find walks from startDir toward the filesystem root looking for a
// druim.toml. The boolean is false when none exists.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
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

// Load finds and parses the manifest governing startDir. The boolean is
// false when no manifest exists; that is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", ManifestName, undecoded[0].String())
	}
	switch cfg.Output.Color {
	case "", "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: output.color must be auto, on or off, got %q", ManifestName, cfg.Output.Color)
	}
	return cfg, nil
}

// EntryPath resolves the run entry file against the manifest root.
func (m *Manifest) EntryPath() string {
	entry := m.Config.Run.Entry
	if entry == "" {
		entry = DefaultEntry
	}
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(m.Root, entry)
}
