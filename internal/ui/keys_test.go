package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func collectKeys(bindings []key.Binding) []string {
	var keys []string
	for _, b := range bindings {
		keys = append(keys, b.Keys()...)
	}
	return keys
}

func TestWindowKeyMap_NoPlainLetters(t *testing.T) {
	// Window keys stay active while typing in the form, so none may be a
	// printable character.
	k := WindowKeyMap()
	all := collectKeys([]key.Binding{k.Add, k.ChooseImage, k.Delete, k.Update, k.NextField, k.PrevField, k.Quit})
	for _, s := range all {
		if len([]rune(s)) == 1 {
			t.Errorf("window key %q is a printable character", s)
		}
	}
}

func TestWindowKeyMap_ActionKeys(t *testing.T) {
	k := WindowKeyMap()
	tests := []struct {
		name    string
		binding key.Binding
		want    string
	}{
		{"add", k.Add, "ctrl+s"},
		{"choose image", k.ChooseImage, "ctrl+o"},
		{"delete", k.Delete, "ctrl+d"},
		{"update", k.Update, "ctrl+e"},
		{"quit", k.Quit, "ctrl+c"},
	}
	for _, tt := range tests {
		if got := strings.Join(tt.binding.Keys(), ","); got != tt.want {
			t.Errorf("%s keys = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	tests := []struct {
		name     string
		dialog   Dialog
		focus    Focus
		wantHelp string
	}{
		{"window", DialogNone, FocusName, "add contact"},
		{"table focus", DialogNone, FocusTable, "delete"},
		{"notice over table", DialogNotice, FocusTable, "ok"},
		{"prompt", DialogPrompt, FocusTable, "cancel"},
		{"picker", DialogPicker, FocusName, "parent dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := HelpBindings(tt.dialog, tt.focus)
			found := false
			for _, b := range km.ShortHelp() {
				if b.Help().Desc == tt.wantHelp {
					found = true
				}
			}
			if !found {
				t.Errorf("short help lacks %q", tt.wantHelp)
			}
			if len(km.FullHelp()) == 0 {
				t.Error("full help is empty")
			}
		})
	}
}

func TestHelpBindings_TableShortcutsShown(t *testing.T) {
	// Given: the table has focus
	km := HelpBindings(DialogNone, FocusTable)

	// Then: every row shortcut appears in the help bar
	keys := collectKeys(km.ShortHelp())
	for _, want := range []string{"k", "j", "e", "enter", "d", "delete", "ctrl+c"} {
		found := false
		for _, k := range keys {
			if k == want {
				found = true
			}
		}
		if !found {
			t.Errorf("table help keys %v lack %q", keys, want)
		}
	}
}

func TestHelpBindings_ShortHelpFitsDefaultWidth(t *testing.T) {
	for _, f := range []Focus{FocusName, FocusTable} {
		h := help.New()
		view := h.ShortHelpView(HelpBindings(DialogNone, f).ShortHelp())
		if w := lipgloss.Width(view); w > 80 {
			t.Errorf("focus %d: short help is %d cells wide, want at most 80", f, w)
		}
	}
}
