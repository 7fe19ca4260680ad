package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTheme indicates a preset name with no matching theme file.
var ErrUnknownTheme = errors.New("ui: unknown theme")

// Theme is the colour scheme of the window. It is built once and handed to
// NewModel; nothing reads appearance from global state.
//
// Colours are "#rrggbb", an ANSI index ("0"-"255"), or empty for the
// terminal default.
type Theme struct {
	Name      string      `yaml:"name"`
	Panel     ColorPair   `yaml:"panel"`
	Button    ColorPair   `yaml:"button"`
	TextField ColorPair   `yaml:"text_field"`
	Label     ColorPair   `yaml:"label"`
	Table     TableColors `yaml:"table"`
	Accent    string      `yaml:"accent"` // focused borders
	Error     string      `yaml:"error"`  // error notices
}

// ColorPair is a foreground/background pair.
type ColorPair struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// TableColors holds the contact table palette.
type TableColors struct {
	Foreground          string `yaml:"foreground"`
	Background          string `yaml:"background"`
	Grid                string `yaml:"grid"`
	SelectionForeground string `yaml:"selection_foreground"`
	SelectionBackground string `yaml:"selection_background"`
}

// DefaultTheme is the appearance used when no theme could be loaded:
// terminal colours everywhere, with ANSI accents for focus and errors.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Accent: "12",
		Error:  "9",
		Table: TableColors{
			Grid:                "240",
			SelectionForeground: "0",
			SelectionBackground: "12",
		},
	}
}

// ParseTheme decodes a theme from YAML. Unknown fields and malformed
// colours are errors. Fields left out keep their DefaultTheme values.
func ParseTheme(data []byte) (Theme, error) {
	t := DefaultTheme()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("ui: parsing theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadTheme reads the preset <name>.yaml from fsys.
func LoadTheme(fsys fs.FS, name string) (Theme, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	data, err := fs.ReadFile(fsys, name+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
		}
		return Theme{}, fmt.Errorf("ui: reading theme %q: %w", name, err)
	}
	return ParseTheme(data)
}

// LoadThemeFile reads a theme from a YAML file on disk.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("ui: reading theme %s: %w", path, err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate checks every colour in the theme.
func (t Theme) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"panel.foreground", t.Panel.Foreground},
		{"panel.background", t.Panel.Background},
		{"button.foreground", t.Button.Foreground},
		{"button.background", t.Button.Background},
		{"text_field.foreground", t.TextField.Foreground},
		{"text_field.background", t.TextField.Background},
		{"label.foreground", t.Label.Foreground},
		{"label.background", t.Label.Background},
		{"table.foreground", t.Table.Foreground},
		{"table.background", t.Table.Background},
		{"table.grid", t.Table.Grid},
		{"table.selection_foreground", t.Table.SelectionForeground},
		{"table.selection_background", t.Table.SelectionBackground},
		{"accent", t.Accent},
		{"error", t.Error},
	}
	for _, f := range fields {
		if !validColor(f.value) {
			return fmt.Errorf("ui: theme %s: invalid colour %q", f.name, f.value)
		}
	}
	return nil
}

func validColor(s string) bool {
	if s == "" {
		return true
	}
	if strings.HasPrefix(s, "#") {
		_, err := colorful.Hex(s)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// termColor maps a theme colour to a lipgloss colour; empty means no colour.
func termColor(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

// thumbnailBackground is the colour transparent thumbnail pixels blend to.
func (t Theme) thumbnailBackground() color.Color {
	if c, err := colorful.Hex(t.Table.Background); err == nil {
		return c
	}
	return color.White
}
