// Package config persists the run wizard's defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the saved answers the run wizard starts from. Filter fields
// keep their raw string form; they are validated when a run starts.
type Config struct {
	Years     string `yaml:"years"`      // e.g. "2007-2017", empty = no filter
	Keywords  string `yaml:"keywords"`   // comma-separated, empty = no filter
	Dedupe    bool   `yaml:"dedupe"`     // keep one record per duplicate
	Folders   string `yaml:"folders"`    // "all" or comma-separated names
	OutputDir string `yaml:"output_dir"` // where workbooks are written
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		Dedupe:    true,
		Folders:   "all",
		OutputDir: "outputs",
	}
}

// Path returns the config file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "ris2xlsx", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
