package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	contacts "github.com/smileynet/contacts"
	"github.com/smileynet/contacts/internal/config"
	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 2
)

// localThemeDir is checked for theme presets before the embedded ones.
const localThemeDir = "themes"

// errNoTTY is returned when stdout is not a terminal.
var errNoTTY = errors.New("contacts: requires a terminal (TTY)")

// CLI is the top-level command structure for contacts.
type CLI struct {
	Version     kong.VersionFlag `help:"Show version." short:"V"`
	Config      string           `help:"Config file applied after the user and project files." type:"path" placeholder:"PATH"`
	Theme       string           `help:"Theme preset name, or a theme .yaml file." placeholder:"NAME|PATH"`
	StartDir    string           `help:"Directory the image chooser opens in." type:"path" placeholder:"DIR"`
	NoAltScreen bool             `help:"Draw inline instead of on the alternate screen."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run loads configuration and theme, then opens the contact manager window.
func (c *CLI) Run() error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !isTTY {
		return errNoTTY
	}

	log := newLogger(os.Stderr)

	cfg, err := c.loadConfig(configPaths()...)
	if err != nil {
		return err
	}

	theme := resolveTheme(cfg.Theme, contacts.OverlayFS(localThemeDir, contacts.Themes), log)

	store, err := contact.NewStore()
	if err != nil {
		return fmt.Errorf("contacts: %w", err)
	}
	m := buildModel(store, cfg, theme, log)

	var opts []tea.ProgramOption
	if !c.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return c.run(isTTY, tea.NewProgram(m, opts...))
}

// run executes the program, enabling testable wiring.
func (c *CLI) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return errNoTTY
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("contacts: %w", err)
	}
	return nil
}

// configPaths returns the user and project config files, lowest priority first.
func configPaths() []string {
	return []string{
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		".contacts/config.yaml",
	}
}

// loadConfig merges the config files at paths, then --config, then the
// environment, then flags, and validates the result.
func (c *CLI) loadConfig(paths ...string) (*config.Config, error) {
	if c.Config != "" {
		if _, err := os.Stat(c.Config); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		paths = append(paths, c.Config)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	// Apply CLI flag overrides.
	if c.Theme != "" {
		cfg.SetTheme(c.Theme)
	}
	if c.StartDir != "" {
		cfg.Picker.StartDir = c.StartDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns the diagnostic logger for startup problems.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()
}

// resolveTheme loads the configured theme. A theme that cannot be loaded is
// reported to log and replaced by the default appearance.
func resolveTheme(sel config.Theme, presets fs.FS, log zerolog.Logger) ui.Theme {
	var (
		theme ui.Theme
		err   error
	)
	if sel.Path != "" {
		theme, err = ui.LoadThemeFile(sel.Path)
	} else {
		theme, err = ui.LoadTheme(presets, sel.Preset)
	}
	if err != nil {
		log.Warn().
			Err(err).
			Str("preset", sel.Preset).
			Str("path", sel.Path).
			Msg("theme initialisation failed, using default appearance")
		return ui.DefaultTheme()
	}
	return theme
}

// pickerDir returns the configured chooser directory, or "" (the working
// directory) when it is unset or unusable.
func pickerDir(dir string, log zerolog.Logger) string {
	if dir == "" {
		return ""
	}
	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", dir)
	}
	if err != nil {
		log.Warn().Err(err).Msg("picker start directory unusable, using working directory")
		return ""
	}
	return dir
}

// buildModel creates the window over store from cfg and theme.
func buildModel(store *contact.Store, cfg *config.Config, theme ui.Theme, log zerolog.Logger) ui.Model {
	opts := []ui.ModelOption{
		ui.WithTheme(theme),
		ui.WithWindowSize(cfg.Window.Width, cfg.Window.Height),
		ui.WithThumbnailSize(cfg.Thumbnail.Width, cfg.Thumbnail.Height),
		ui.WithImageExtensions(cfg.Picker.Extensions...),
	}
	if dir := pickerDir(cfg.Picker.StartDir, log); dir != "" {
		opts = append(opts, ui.WithPickerDir(dir))
	}
	return ui.NewModel(store, opts...)
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("Keep a list of contacts, each with a name, phone number and photo."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
