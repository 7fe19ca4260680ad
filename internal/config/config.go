// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all contacts configuration.
type Config struct {
	Window    Window    `yaml:"window"`
	Theme     Theme     `yaml:"theme"`
	Thumbnail Thumbnail `yaml:"thumbnail"`
	Picker    Picker    `yaml:"picker"`
}

// Window holds the initial layout size used until the terminal reports its own.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Theme selects the appearance. Path wins over Preset when both are set.
type Theme struct {
	Preset string `yaml:"preset"` // embedded preset name, e.g. "pastel"
	Path   string `yaml:"path"`   // theme YAML file on disk
}

// Thumbnail holds the cell bound for contact photos.
type Thumbnail struct {
	Width  int `yaml:"width"`  // Terminal columns.
	Height int `yaml:"height"` // Terminal rows; each row shows two pixel rows.
}

// Picker holds file chooser settings.
type Picker struct {
	StartDir   string   `yaml:"start_dir"`  // Empty means the working directory.
	Extensions []string `yaml:"extensions"` // Selectable file extensions, with leading dot.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Window: Window{
			Width:  80,
			Height: 30,
		},
		Theme: Theme{
			Preset: "pastel",
		},
		Thumbnail: Thumbnail{
			Width:  10,
			Height: 5,
		},
		Picker: Picker{
			Extensions: []string{".png", ".jpg", ".jpeg", ".gif"},
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Thumbnail.Width <= 0 || c.Thumbnail.Height <= 0 {
		return fmt.Errorf("config: thumbnail size must be positive, got %dx%d", c.Thumbnail.Width, c.Thumbnail.Height)
	}
	if len(c.Picker.Extensions) == 0 {
		return errors.New("config: picker.extensions cannot be empty")
	}
	for _, ext := range c.Picker.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("config: picker extension %q must start with a dot", ext)
		}
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTS_THEME, CONTACTS_START_DIR.
//
// CONTACTS_THEME names an embedded preset, or a theme file when it ends in
// .yaml or .yml.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CONTACTS_THEME"); v != "" {
		c.SetTheme(v)
	}
	if v := os.Getenv("CONTACTS_START_DIR"); v != "" {
		c.Picker.StartDir = v
	}
}

// SetTheme selects a preset or, for a .yaml/.yml value, a theme file.
func (c *Config) SetTheme(v string) {
	if strings.HasSuffix(v, ".yaml") || strings.HasSuffix(v, ".yml") {
		c.Theme.Path = v
		return
	}
	c.Theme.Preset = v
	c.Theme.Path = ""
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Window    *rawWindow    `yaml:"window"`
	Theme     *rawTheme     `yaml:"theme"`
	Thumbnail *rawThumbnail `yaml:"thumbnail"`
	Picker    *rawPicker    `yaml:"picker"`
}

type rawWindow struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type rawTheme struct {
	Preset *string `yaml:"preset"`
	Path   *string `yaml:"path"`
}

type rawThumbnail struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type rawPicker struct {
	StartDir   *string   `yaml:"start_dir"`
	Extensions *[]string `yaml:"extensions"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Window != nil {
		if layer.Window.Width != nil {
			c.Window.Width = *layer.Window.Width
		}
		if layer.Window.Height != nil {
			c.Window.Height = *layer.Window.Height
		}
	}
	if layer.Theme != nil {
		if layer.Theme.Preset != nil {
			c.Theme.Preset = *layer.Theme.Preset
		}
		if layer.Theme.Path != nil {
			c.Theme.Path = *layer.Theme.Path
		}
	}
	if layer.Thumbnail != nil {
		if layer.Thumbnail.Width != nil {
			c.Thumbnail.Width = *layer.Thumbnail.Width
		}
		if layer.Thumbnail.Height != nil {
			c.Thumbnail.Height = *layer.Thumbnail.Height
		}
	}
	if layer.Picker != nil {
		if layer.Picker.StartDir != nil {
			c.Picker.StartDir = *layer.Picker.StartDir
		}
		if layer.Picker.Extensions != nil {
			c.Picker.Extensions = append([]string(nil), (*layer.Picker.Extensions)...)
		}
	}
}
