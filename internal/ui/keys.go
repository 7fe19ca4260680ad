package ui

import "github.com/charmbracelet/bubbles/key"

// windowKeys holds the bindings active when no dialog is open.
type windowKeys struct {
	Add         key.Binding
	ChooseImage key.Binding
	Delete      key.Binding
	Update      key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Quit        key.Binding
}

// ShortHelp returns the window bindings for the help bar. The other
// actions show their keys on the action bar.
func (k windowKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.NextField, k.PrevField, k.Quit}
}

// FullHelp returns the window bindings grouped for expanded help.
func (k windowKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.ChooseImage, k.Delete, k.Update},
		{k.NextField, k.PrevField, k.Quit},
	}
}

// tableKeys holds the extra bindings active while the table has focus.
type tableKeys struct {
	Up     key.Binding
	Down   key.Binding
	Update key.Binding
	Delete key.Binding
}

// noticeKeys holds the bindings of an open notice.
type noticeKeys struct {
	Dismiss key.Binding
}

// ShortHelp returns the notice bindings for the help bar.
func (k noticeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns the notice bindings grouped for expanded help.
func (k noticeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

// promptKeys holds the bindings of the update prompt.
type promptKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns the prompt bindings for the help bar.
func (k promptKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns the prompt bindings grouped for expanded help.
func (k promptKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// pickerKeys holds the bindings of the image chooser shown in the help bar.
// Navigation keys belong to the file picker itself.
type pickerKeys struct {
	Navigate key.Binding
	Open     key.Binding
	Back     key.Binding
	Cancel   key.Binding
}

// ShortHelp returns the chooser bindings for the help bar.
func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Open, k.Back, k.Cancel}
}

// FullHelp returns the chooser bindings grouped for expanded help.
func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Navigate, k.Open}, {k.Back, k.Cancel}}
}

// WindowKeyMap returns the key bindings for the main window.
// Action keys use ctrl so they never collide with typing in the form.
func WindowKeyMap() windowKeys {
	return windowKeys{
		Add: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "add contact"),
		),
		ChooseImage: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "choose image"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete contact"),
		),
		Update: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "update contact"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// TableKeyMap returns the shortcuts available while the table has focus.
func TableKeyMap() tableKeys {
	return tableKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Update: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "update"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "d"),
			key.WithHelp("del/d", "delete"),
		),
	}
}

// NoticeKeyMap returns the key bindings for an open notice.
func NoticeKeyMap() noticeKeys {
	return noticeKeys{
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
	}
}

// PromptKeyMap returns the key bindings for the update prompt.
func PromptKeyMap() promptKeys {
	return promptKeys{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// PickerKeyMap returns the help bindings for the image chooser.
func PickerKeyMap() pickerKeys {
	return pickerKeys{
		// Display-only: the file picker handles navigation itself.
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "navigate"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/select"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "left", "h"),
			key.WithHelp("←", "parent dir"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
