package ui

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/contact"
)

func TestNoticeText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty name", contact.ErrEmptyName, msgEmptyName},
		{"invalid phone", contact.ErrInvalidPhone, msgInvalidPhone},
		{"wrapped index", fmt.Errorf("%w: 5 (have 2)", contact.ErrIndexOutOfRange), msgStale},
		{"other", errors.New("disk on fire"), "disk on fire"},
	}
	for _, tt := range tests {
		if got := noticeText(tt.err); got != tt.want {
			t.Errorf("%s: noticeText() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNotice_IgnoresOtherKeys(t *testing.T) {
	n := newNotice(NoticeInfo, msgAdded)
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'a'}},
		{Type: tea.KeyTab},
		{Type: tea.KeyCtrlS},
	} {
		if n.Update(k) {
			t.Errorf("%q should not dismiss the notice", k.String())
		}
	}
	if n.Update(tea.WindowSizeMsg{Width: 10, Height: 10}) {
		t.Error("non-key messages should not dismiss the notice")
	}
}

func TestNotice_View(t *testing.T) {
	st := newStyles(DefaultTheme())

	info := newNotice(NoticeInfo, msgAdded).View(st, 60, 10)
	if !containsPlainText(info, msgAdded) || !containsPlainText(info, "OK") {
		t.Errorf("info notice view missing text or OK button:\n%s", stripANSI(info))
	}

	errView := errorNotice(contact.ErrEmptyName).View(st, 60, 10)
	if !containsPlainText(errView, msgEmptyName) {
		t.Errorf("error notice view missing text:\n%s", stripANSI(errView))
	}
}
