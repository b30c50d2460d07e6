// Package config reads the optional defaults file of the stx tools.
//
// The file is TOML, found at $STX_CONFIG or else at
// $XDG_CONFIG_HOME/stx/config.toml (~/.config/stx/config.toml when
// XDG_CONFIG_HOME is unset):
//
//	lenient = true
//	jsonc = true
//	strict = false
//	color = "auto"   # or "always", "never"
//	input = "json"
//	output = "block"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/signadot/structext/format"
)

type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

type Config struct {
	Lenient bool   `toml:"lenient"`
	JSONC   bool   `toml:"jsonc"`
	Strict  bool   `toml:"strict"`
	Color   Color  `toml:"color"`
	Input   string `toml:"input"`
	Output  string `toml:"output"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

// Default is the configuration used when there is no file.
func Default() *Config {
	return &Config{Color: ColorAuto}
}

// Path returns the location of the configuration file.
func Path() string {
	if p := os.Getenv("STX_CONFIG"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "stx", "config.toml")
}

// Load reads the configuration file at Path.  A missing file gives the
// defaults.
func Load() (*Config, error) {
	p := Path()
	if p == "" {
		return Default(), nil
	}
	return LoadFile(p)
}

// LoadFile reads the configuration file p.  A missing file gives the
// defaults.
func LoadFile(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	cfg.Path = p
	return cfg, nil
}

// Parse parses and validates TOML configuration data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	for _, f := range []string{c.Input, c.Output} {
		if f == "" {
			continue
		}
		if _, err := format.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// InputFormat returns the configured input format or def.
func (c *Config) InputFormat(def format.Format) format.Format {
	return orFormat(c.Input, def)
}

// OutputFormat returns the configured output format or def.
func (c *Config) OutputFormat(def format.Format) format.Format {
	return orFormat(c.Output, def)
}

func orFormat(s string, def format.Format) format.Format {
	if s == "" {
		return def
	}
	f, err := format.ParseFormat(s)
	if err != nil {
		return def
	}
	return f
}
