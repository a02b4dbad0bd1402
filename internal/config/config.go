// Package config loads the optional TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bodgit/mii/internal/logging"
	"github.com/bodgit/mii/render"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings that can be supplied from a file. Command line
// flags take precedence.
type Config struct {
	Directory string `toml:"directory"`
	Format    string `toml:"format"`
	LogLevel  int    `toml:"log_level"`
	Color     string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Directory: ".",
		Format:    render.FormatText.String(),
		LogLevel:  logging.LevelError,
		Color:     ColorAuto,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mii/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "mii", "config.toml")
}

// Load reads the configuration at path, or DefaultPath if path is empty.
// A missing default file yields Default; a missing explicit file is an error.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return errors.New("directory must not be empty")
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.LogLevel < logging.LevelNone || c.LogLevel > logging.LevelInfo {
		return fmt.Errorf("log_level %d out of range %d-%d", c.LogLevel, logging.LevelNone, logging.LevelInfo)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %s, %s or %s, not %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}
