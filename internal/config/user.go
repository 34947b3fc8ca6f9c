package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// UserConfigPath returns the per-user config file,
// e.g. ~/.config/xylo/xylo.toml on linux.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xylo", ConfigFilename), nil
}

// LoadOrCreate loads the config at path. If the file does not exist yet, the
// built-in Default is persisted there first and created is true.
func LoadOrCreate(path string) (cfg *Config, created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := LoadFile(path)
		return cfg, false, err
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, false, err
	}
	cfg = Default()
	if err := SaveFile(cfg, path); err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}
