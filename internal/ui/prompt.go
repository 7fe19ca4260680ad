package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
)

// promptStep is the question the update prompt is asking.
type promptStep int

const (
	stepName promptStep = iota
	stepPhone
)

// updatePrompt asks for a replacement name, then a replacement phone
// number, each pre-filled with the current value. It targets a contact by
// ID so the answer still lands on the right record.
type updatePrompt struct {
	id    string
	step  promptStep
	name  textinput.Model
	phone textinput.Model
	keys  promptKeys
}

func newUpdatePrompt(c contact.Contact, st styles) *updatePrompt {
	name := newInput("", st)
	name.SetValue(c.Name)
	name.CursorEnd()
	name.Focus()

	phone := newInput("", st)
	phone.SetValue(c.Phone)
	phone.CursorEnd()

	return &updatePrompt{
		id:    c.ID,
		step:  stepName,
		name:  name,
		phone: phone,
		keys:  PromptKeyMap(),
	}
}

// Update handles a message and reports whether the prompt has closed.
// Closing emits updateConfirmedMsg or updateCancelledMsg.
func (p *updatePrompt) Update(msg tea.Msg) (tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, p.keys.Cancel):
			return func() tea.Msg { return updateCancelledMsg{} }, true

		case key.Matches(k, p.keys.Confirm):
			if p.step == stepName {
				p.step = stepPhone
				p.name.Blur()
				return p.phone.Focus(), false
			}
			out := updateConfirmedMsg{ID: p.id, Name: p.name.Value(), Phone: p.phone.Value()}
			return func() tea.Msg { return out }, true
		}
	}

	var cmd tea.Cmd
	if p.step == stepName {
		p.name, cmd = p.name.Update(msg)
	} else {
		p.phone, cmd = p.phone.Update(msg)
	}
	return cmd, false
}

// View renders the active question centred in width×height.
func (p *updatePrompt) View(st styles, width, height int) string {
	question, input := "Enter new name:", p.name
	if p.step == stepPhone {
		question, input = "Enter new phone number:", p.phone
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		st.label.Render(question),
		"",
		input.View(),
		"",
		st.button.Render("OK")+" "+st.button.Render("Cancel"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, st.notice.Render(content))
}
