package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/contact"
)

func TestUpdatePrompt_AsksNameThenPhone(t *testing.T) {
	st := newStyles(DefaultTheme())
	p := newUpdatePrompt(contact.Contact{ID: "c1", Name: "Alice", Phone: "5551234567"}, st)

	if !containsPlainText(p.View(st, 80, 20), "Enter new name:") {
		t.Error("first question should ask for the name")
	}

	if _, closed := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); closed {
		t.Fatal("first enter should move to the phone question")
	}
	if !containsPlainText(p.View(st, 80, 20), "Enter new phone number:") {
		t.Error("second question should ask for the phone number")
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	cmd, closed := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !closed {
		t.Fatal("second enter should close the prompt")
	}
	msg, ok := cmd().(updateConfirmedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want updateConfirmedMsg", cmd())
	}
	want := updateConfirmedMsg{ID: "c1", Name: "Alice", Phone: "55512345679"}
	if msg != want {
		t.Errorf("msg = %+v, want %+v", msg, want)
	}
}

func TestUpdatePrompt_CancelAtEitherStep(t *testing.T) {
	for _, enters := range []int{0, 1} {
		st := newStyles(DefaultTheme())
		p := newUpdatePrompt(contact.Contact{ID: "c1", Name: "A", Phone: "5551234567"}, st)
		for i := 0; i < enters; i++ {
			p.Update(tea.KeyMsg{Type: tea.KeyEnter})
		}

		cmd, closed := p.Update(tea.KeyMsg{Type: tea.KeyEsc})

		if !closed {
			t.Fatalf("after %d enters: esc should close the prompt", enters)
		}
		if _, ok := cmd().(updateCancelledMsg); !ok {
			t.Errorf("after %d enters: cmd produced %T, want updateCancelledMsg", enters, cmd())
		}
	}
}
