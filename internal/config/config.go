// Package config loads the application configuration from a TOML
// file under the user's config directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration. Every field has a working
// default so a missing file is fine.
type Config struct {
	// DataFile is where the task data lives.
	DataFile string `toml:"data_file"`

	// LogFile enables debug logging when set.
	LogFile string `toml:"log_file"`

	// ArrowTraversal lets Up/Down move focus between widgets when
	// the focused widget did not use the key.
	ArrowTraversal bool `toml:"arrow_traversal"`
}

// DefaultPath returns $XDG_CONFIG_HOME/tuido/config.toml, falling
// back to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tuido", "config.toml")
}

func defaultDataFile() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "userdata.json"
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "tuido", "userdata.json")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile:       defaultDataFile(),
		ArrowTraversal: true,
	}
}

// Load reads the configuration at path. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.DataFile == "" {
		cfg.DataFile = defaultDataFile()
	}
	return cfg, nil
}
