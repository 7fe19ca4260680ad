package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/thumbnail"
)

// phoneColumnWidth fits a 15-digit international number.
const phoneColumnWidth = 15

// tableChrome is the line count of the top border, header, header rule and
// the hint line under the table. Each row adds its height plus one rule
// (the last row's rule is the bottom border).
const tableChrome = 4

// contactTable is the store's projection onto the screen. The store calls
// Render after every successful mutation; the table never edits rows itself.
//
// Rows have a fixed height (the thumbnail height) and the visible window
// scrolls to keep the cursor on screen.
type contactTable struct {
	rows    []contact.Contact
	cursor  int
	offset  int
	visible int

	thumbs    *thumbnail.Cache
	thumbCols int
	thumbRows int
}

var _ contact.Renderer = (*contactTable)(nil)

func newContactTable(thumbs *thumbnail.Cache, thumbCols, thumbRows int) *contactTable {
	return &contactTable{
		thumbs:    thumbs,
		thumbCols: thumbCols,
		thumbRows: thumbRows,
		visible:   1,
	}
}

// Render replaces the rows with the store's contents.
func (t *contactTable) Render(contacts []contact.Contact) {
	t.rows = contacts
	t.clamp()
}

// Len returns the number of rows.
func (t *contactTable) Len() int {
	return len(t.rows)
}

// indexOf returns the row of the contact with id, or -1.
func (t *contactTable) indexOf(id string) int {
	for i, c := range t.rows {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// current returns the contact under the cursor.
func (t *contactTable) current() (contact.Contact, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return contact.Contact{}, false
	}
	return t.rows[t.cursor], true
}

// moveTo puts the cursor on row i.
func (t *contactTable) moveTo(i int) {
	t.cursor = i
	t.clamp()
}

// move shifts the cursor by delta rows, stopping at either end.
func (t *contactTable) move(delta int) {
	t.moveTo(t.cursor + delta)
}

// setHeight sizes the visible window for a pane of height lines.
func (t *contactTable) setHeight(height int) {
	t.visible = (height - tableChrome) / (t.rowHeight() + 1)
	if t.visible < 1 {
		t.visible = 1
	}
	t.clamp()
}

func (t *contactTable) rowHeight() int {
	if t.thumbRows < 1 {
		return 1
	}
	return t.thumbRows
}

// clamp keeps cursor within the rows and the window around the cursor.
func (t *contactTable) clamp() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.visible {
		t.offset = t.cursor - t.visible + 1
	}
	if maxOffset := len(t.rows) - t.visible; t.offset > maxOffset {
		t.offset = maxOffset
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// window returns the rows currently on screen.
func (t *contactTable) window() []contact.Contact {
	end := t.offset + t.visible
	if end > len(t.rows) {
		end = len(t.rows)
	}
	return t.rows[t.offset:end]
}

// View renders the visible rows. selectedID is highlighted when present.
func (t *contactTable) View(st styles, width int, selectedID string) string {
	nameWidth := width - phoneColumnWidth - t.thumbCols - 10
	if nameWidth < 4 {
		nameWidth = 4
	}

	rows := t.window()
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.tableBorder).
		BorderRow(true).
		Headers(
			pad("Name", nameWidth),
			pad("Phone", phoneColumnWidth),
			pad("Image", t.thumbCols),
		).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.tableHeader
			case row >= 0 && row < len(rows) && rows[row].ID == selectedID:
				return st.tableSelected
			default:
				return st.tableCell
			}
		})

	for _, c := range rows {
		tbl.Row(
			pad(c.Name, nameWidth),
			pad(c.Phone, phoneColumnWidth),
			t.imageCell(c),
		)
	}

	out := tbl.Render()
	if len(t.rows) == 0 {
		out += "\n" + st.muted.Render("No contacts yet. Fill in the form and press ctrl+s.")
	} else if len(t.rows) > t.visible {
		out += "\n" + st.muted.Render(scrollHint(t.offset, len(rows), len(t.rows)))
	}
	return out
}

// imageCell is the thumbnail for c, or a block of the same size that is
// blank (no image) or holds the placeholder (unreadable file).
func (t *contactTable) imageCell(c contact.Contact) string {
	first := ""
	if c.HasImage() {
		view, err := t.thumbs.Get(c.ImagePath, t.thumbCols, t.thumbRows)
		if err == nil {
			return view
		}
		first = view
	}
	lines := make([]string, t.rowHeight())
	for i := range lines {
		lines[i] = pad("", t.thumbCols)
	}
	lines[0] = pad(first, t.thumbCols)
	return strings.Join(lines, "\n")
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func scrollHint(offset, shown, total int) string {
	return fmt.Sprintf("rows %d-%d of %d", offset+1, offset+shown, total)
}
