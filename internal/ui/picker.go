package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerChrome is the number of lines around the file list inside the dialog.
const pickerChrome = 8

// filepicker.Model subtracts this from WindowSizeMsg heights when AutoHeight is on.
const filepickerMargin = 5

// imagePicker is the modal file chooser for contact photos. It lives only
// between Choose Image and the confirm/cancel that follows.
type imagePicker struct {
	fp   filepicker.Model
	keys pickerKeys
}

func newImagePicker(dir string, extensions []string) *imagePicker {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = extensionVariants(extensions)
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowPermissions = false
	fp.AutoHeight = true
	// esc cancels the dialog instead of walking up a directory.
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)
	return &imagePicker{fp: fp, keys: PickerKeyMap()}
}

// extensionVariants lists each extension in its configured, lower and upper
// case forms. filepicker matches suffixes case-sensitively.
func extensionVariants(extensions []string) []string {
	seen := make(map[string]bool, len(extensions)*3)
	var out []string
	for _, ext := range extensions {
		for _, v := range []string{ext, strings.ToLower(ext), strings.ToUpper(ext)} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Init reads the start directory and sizes the list for a window of height rows.
func (p *imagePicker) Init(width, height int) tea.Cmd {
	p.fp, _ = p.fp.Update(tea.WindowSizeMsg{Width: width, Height: listHeight(height) + filepickerMargin})
	return p.fp.Init()
}

func listHeight(windowHeight int) int {
	h := windowHeight - pickerChrome
	if h < 3 {
		return 3
	}
	return h
}

// Update handles a message and reports whether the chooser has closed.
// Closing emits imageChosenMsg or imageCancelledMsg.
func (p *imagePicker) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Cancel) {
			return func() tea.Msg { return imageCancelledMsg{} }, true
		}
	case tea.WindowSizeMsg:
		msg.Height = listHeight(msg.Height) + filepickerMargin
		var cmd tea.Cmd
		p.fp, cmd = p.fp.Update(msg)
		return cmd, false
	}

	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)

	if ok, path := p.fp.DidSelectFile(msg); ok {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return func() tea.Msg { return imageChosenMsg{Path: path} }, true
	}
	return cmd, false
}

// View renders the chooser centred in width×height.
func (p *imagePicker) View(st styles, width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Choose Image"),
		st.muted.Render(p.fp.CurrentDirectory),
		"",
		p.fp.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, st.notice.Render(content))
}
