package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// tableHelp is the help bar content while the table has focus: the row
// shortcuts plus quit.
type tableHelp struct {
	table tableKeys
	quit  key.Binding
}

// ShortHelp returns the table bindings for the help bar.
func (k tableHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.table.Up, k.table.Down, k.table.Update, k.table.Delete, k.quit}
}

// FullHelp returns the table bindings grouped for expanded help.
func (k tableHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.table.Up, k.table.Down},
		{k.table.Update, k.table.Delete, k.quit},
	}
}

// HelpBindings returns the help.KeyMap for the given dialog and focus,
// providing context-aware help bar content.
func HelpBindings(d Dialog, f Focus) help.KeyMap {
	switch d {
	case DialogNotice:
		return NoticeKeyMap()
	case DialogPrompt:
		return PromptKeyMap()
	case DialogPicker:
		return PickerKeyMap()
	}
	if f == FocusTable {
		return tableHelp{table: TableKeyMap(), quit: WindowKeyMap().Quit}
	}
	return WindowKeyMap()
}
