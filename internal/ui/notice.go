package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
)

// Notice texts.
const (
	msgAdded          = "Contact added!"
	msgUpdated        = "Contact updated!"
	msgDeleted        = "Contact deleted!"
	msgUpdateCanceled = "Update cancelled."
	msgSelectUpdate   = "Please select a contact to update."
	msgSelectDelete   = "Please select a contact to delete."
	msgNoImage        = "No image selected."
	msgImageSelected  = "Image selected: "
	msgEmptyName      = "Name cannot be empty"
	msgInvalidPhone   = "Invalid phone number. It must be at least 10 digits and contain only numbers."
	msgStale          = "That contact no longer exists."
)

// notice is a modal acknowledgement. While one is open it swallows every
// key except quit.
type notice struct {
	kind NoticeKind
	text string
	keys noticeKeys
}

func newNotice(kind NoticeKind, text string) *notice {
	return &notice{kind: kind, text: text, keys: NoticeKeyMap()}
}

// errorNotice names the rule behind err.
func errorNotice(err error) *notice {
	return newNotice(NoticeError, noticeText(err))
}

// noticeText maps store errors to the message shown to the user.
func noticeText(err error) string {
	switch {
	case errors.Is(err, contact.ErrEmptyName):
		return msgEmptyName
	case errors.Is(err, contact.ErrInvalidPhone):
		return msgInvalidPhone
	case errors.Is(err, contact.ErrIndexOutOfRange):
		return msgStale
	default:
		return err.Error()
	}
}

// Update reports whether msg dismisses the notice.
func (n *notice) Update(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	return ok && key.Matches(k, n.keys.Dismiss)
}

// View renders the notice box centred in width×height.
func (n *notice) View(st styles, width, height int) string {
	box := st.notice
	body := n.text
	if n.kind == NoticeError {
		box = st.noticeError
		body = st.errorText.Render(n.text)
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		body,
		"",
		st.button.Render("OK"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(content))
}
