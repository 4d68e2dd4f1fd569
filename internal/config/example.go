package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed default_config.toml
var exampleConfig []byte

// ErrExists is returned by WriteExample when the target is already present.
var ErrExists = errors.New("config file already exists")

// WriteExample writes the commented example config to path, creating parent
// directories. An existing file is only replaced when overwrite is set.
func WriteExample(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, exampleConfig, 0644)
}
