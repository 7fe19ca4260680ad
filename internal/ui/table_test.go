package ui

import (
	"strings"
	"testing"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/thumbnail"
)

func newTestTable(rows int) *contactTable {
	tbl := newContactTable(thumbnail.NewCache(nil), 10, 2)
	tbl.setHeight(100)
	var cs []contact.Contact
	for i := 0; i < rows; i++ {
		cs = append(cs, contact.Contact{
			ID:    string(rune('a' + i)),
			Name:  "Name" + string(rune('A'+i)),
			Phone: "555000000" + string(rune('0'+i)),
		})
	}
	tbl.Render(cs)
	return tbl
}

func TestContactTable_RenderReplacesRows(t *testing.T) {
	tbl := newTestTable(3)

	tbl.Render([]contact.Contact{{ID: "z", Name: "Zed", Phone: "5551234567"}})

	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
	if tbl.indexOf("z") != 0 || tbl.indexOf("a") != -1 {
		t.Errorf("indexOf after Render: z=%d a=%d, want 0 and -1", tbl.indexOf("z"), tbl.indexOf("a"))
	}
}

func TestContactTable_CursorClampsOnShrink(t *testing.T) {
	tbl := newTestTable(3)
	tbl.moveTo(2)

	tbl.Render(tbl.rows[:1])

	c, ok := tbl.current()
	if !ok || c.ID != "a" {
		t.Errorf("current() = %+v, %v; want row a", c, ok)
	}
}

func TestContactTable_CurrentOnEmpty(t *testing.T) {
	tbl := newTestTable(0)
	if _, ok := tbl.current(); ok {
		t.Error("current() on an empty table should report false")
	}
}

func TestContactTable_MoveStopsAtEnds(t *testing.T) {
	tbl := newTestTable(3)

	tbl.move(-1)
	if tbl.cursor != 0 {
		t.Errorf("cursor = %d after moving up from the top, want 0", tbl.cursor)
	}
	tbl.move(10)
	if tbl.cursor != 2 {
		t.Errorf("cursor = %d after moving past the end, want 2", tbl.cursor)
	}
}

func TestContactTable_SetHeight(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{height: 0, want: 1},
		{height: tableChrome + 3, want: 1},
		{height: tableChrome + 6, want: 2},
		{height: tableChrome + 10, want: 3},
	}
	for _, tt := range tests {
		tbl := newContactTable(thumbnail.NewCache(nil), 10, 2)
		tbl.setHeight(tt.height)
		if tbl.visible != tt.want {
			t.Errorf("setHeight(%d): visible = %d, want %d", tt.height, tbl.visible, tt.want)
		}
	}
}

func TestContactTable_WindowFollowsCursor(t *testing.T) {
	// Given: five rows with room for two
	tbl := newTestTable(5)
	tbl.setHeight(tableChrome + 6)

	// When: the cursor moves to the last row
	tbl.moveTo(4)

	// Then: the window ends at the cursor
	w := tbl.window()
	if len(w) != 2 || w[0].ID != "d" || w[1].ID != "e" {
		t.Errorf("window() = %v, want rows d and e", w)
	}

	tbl.moveTo(0)
	if w := tbl.window(); w[0].ID != "a" {
		t.Errorf("window()[0] = %q after moving to the top, want a", w[0].ID)
	}
}

func TestContactTable_ViewShowsRows(t *testing.T) {
	tbl := newTestTable(2)

	view := stripANSI(tbl.View(newStyles(DefaultTheme()), 60, ""))

	for _, want := range []string{"Name", "Phone", "Image", "NameA", "NameB", "5550000000", "5550000001"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestContactTable_ViewEmpty(t *testing.T) {
	tbl := newTestTable(0)

	view := stripANSI(tbl.View(newStyles(DefaultTheme()), 60, ""))

	if !strings.Contains(view, "No contacts yet") {
		t.Errorf("View() should explain the empty table:\n%s", view)
	}
}

func TestContactTable_ViewScrollHint(t *testing.T) {
	tbl := newTestTable(5)
	tbl.setHeight(tableChrome + 6)

	view := stripANSI(tbl.View(newStyles(DefaultTheme()), 60, ""))

	if !strings.Contains(view, "rows 1-2 of 5") {
		t.Errorf("View() should show the scroll position:\n%s", view)
	}
}

func TestContactTable_ImageCellHeight(t *testing.T) {
	tbl := newContactTable(thumbnail.NewCache(nil), 10, 3)

	tests := []struct {
		name      string
		c         contact.Contact
		wantFirst string
	}{
		{"no image", contact.Contact{Name: "A", Phone: "5551234567"}, ""},
		{"unreadable image", contact.Contact{Name: "A", Phone: "5551234567", ImagePath: "/does/not/exist.png"}, thumbnail.Placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(tbl.imageCell(tt.c), "\n")
			if len(lines) != 3 {
				t.Fatalf("imageCell has %d lines, want 3", len(lines))
			}
			if got := strings.TrimSpace(lines[0]); got != tt.wantFirst {
				t.Errorf("first line = %q, want %q", got, tt.wantFirst)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"", 3, "   "},
		{"abcd", 4, "abcd"},
	}
	for _, tt := range tests {
		if got := pad(tt.in, tt.width); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
