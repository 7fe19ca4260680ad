package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/contact"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// sequentialIDs returns an ID generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newTestStore creates a store with predictable IDs seeded with contacts.
func newTestStore(t *testing.T, seeds ...contact.Contact) *contact.Store {
	t.Helper()
	s, err := contact.NewStore(contact.WithIDFunc(sequentialIDs()), contact.WithContacts(seeds...))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

// sampleContacts returns three valid contacts without images. Seeded into
// newTestStore they get IDs id-1, id-2 and id-3.
func sampleContacts() []contact.Contact {
	return []contact.Contact{
		{Name: "Alice", Phone: "5551234567"},
		{Name: "Bob", Phone: "5559876543"},
		{Name: "Carol", Phone: "5550001111"},
	}
}

// send applies msg and returns the updated model with its command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// press applies a key of the given type.
func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: k})
	return m
}

// typeText sends s as one rune key at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// runCmd executes cmd and feeds the resulting message back into m.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	m, _ = send(t, m, cmd())
	return m
}

// fillForm types a name and phone into the form, leaving focus on phone.
func fillForm(t *testing.T, m Model, name, phone string) Model {
	t.Helper()
	m = typeText(t, m, name)
	m = press(t, m, tea.KeyTab)
	return typeText(t, m, phone)
}
