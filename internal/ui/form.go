package ui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// noImageLabel is the image status shown when no file is pending.
const noImageLabel = "No Image Selected"

// inputWidth is the visible width of the form's text inputs.
const inputWidth = 30

// form collects the name and phone of the next contact and remembers the
// image chosen for it.
type form struct {
	name         textinput.Model
	phone        textinput.Model
	pendingImage string
}

func newInput(placeholder string, st styles) textinput.Model {
	inp := textinput.New()
	inp.Prompt = ""
	inp.Placeholder = placeholder
	inp.Width = inputWidth
	inp.TextStyle = st.inputText
	inp.PlaceholderStyle = st.muted
	return inp
}

func newForm(st styles) form {
	f := form{
		name:  newInput("Full name", st),
		phone: newInput("Digits only", st),
	}
	f.name.Focus()
	return f
}

// focus moves the text cursor to the field matching fc.
func (f *form) focus(fc Focus) tea.Cmd {
	f.name.Blur()
	f.phone.Blur()
	switch fc {
	case FocusName:
		return f.name.Focus()
	case FocusPhone:
		return f.phone.Focus()
	}
	return nil
}

// update forwards msg to the focused field.
func (f *form) update(fc Focus, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch fc {
	case FocusName:
		f.name, cmd = f.name.Update(msg)
	case FocusPhone:
		f.phone, cmd = f.phone.Update(msg)
	}
	return cmd
}

// values returns the typed name and phone verbatim.
func (f *form) values() (name, phone string) {
	return f.name.Value(), f.phone.Value()
}

// reset clears both fields and the pending image.
func (f *form) reset() {
	f.name.Reset()
	f.phone.Reset()
	f.pendingImage = ""
}

// imageLabel is the status text for the pending image.
func (f *form) imageLabel() string {
	if f.pendingImage == "" {
		return noImageLabel
	}
	return filepath.Base(f.pendingImage)
}

func (f *form) View(st styles) string {
	row := func(label string, in textinput.Model) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			st.label.Width(8).Render(label),
			in.View(),
		)
	}
	image := st.muted.Render(f.imageLabel())
	if f.pendingImage != "" {
		image = st.label.Render(f.imageLabel())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		row("Name:", f.name),
		row("Phone:", f.phone),
		lipgloss.JoinHorizontal(lipgloss.Top, st.label.Width(8).Render("Image:"), image),
	)
}
