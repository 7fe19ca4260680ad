package ui

import "github.com/charmbracelet/lipgloss"

// MinTableWidth is the minimum character width for the table pane.
const MinTableWidth = 40

// styles holds every lipgloss style the window uses, derived once from a Theme.
type styles struct {
	window        lipgloss.Style
	title         lipgloss.Style
	label         lipgloss.Style
	inputText     lipgloss.Style
	button        lipgloss.Style
	buttonKey     lipgloss.Style
	muted         lipgloss.Style
	tableHeader   lipgloss.Style
	tableCell     lipgloss.Style
	tableSelected lipgloss.Style
	tableBorder   lipgloss.Style
	focused       lipgloss.Style
	unfocused     lipgloss.Style
	notice        lipgloss.Style
	noticeError   lipgloss.Style
	errorText     lipgloss.Style
}

func newStyles(t Theme) styles {
	accent := termColor(t.Accent)
	grid := termColor(t.Table.Grid)

	return styles{
		window: lipgloss.NewStyle().
			Foreground(termColor(t.Panel.Foreground)).
			Background(termColor(t.Panel.Background)),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(termColor(t.Label.Foreground)).
			Background(termColor(t.Panel.Background)),
		label: lipgloss.NewStyle().
			Foreground(termColor(t.Label.Foreground)).
			Background(termColor(t.Label.Background)),
		inputText: lipgloss.NewStyle().
			Foreground(termColor(t.TextField.Foreground)).
			Background(termColor(t.TextField.Background)),
		button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(termColor(t.Button.Foreground)).
			Background(termColor(t.Button.Background)),
		buttonKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(termColor(t.Button.Foreground)).
			Background(termColor(t.Button.Background)),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		tableHeader: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(termColor(t.Table.Foreground)).
			Background(termColor(t.Table.Background)),
		tableCell: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(termColor(t.Table.Foreground)).
			Background(termColor(t.Table.Background)),
		tableSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(termColor(t.Table.SelectionForeground)).
			Background(termColor(t.Table.SelectionBackground)),
		tableBorder: lipgloss.NewStyle().
			Foreground(grid),
		focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		unfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(grid),
		notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3).
			Foreground(termColor(t.Panel.Foreground)).
			Background(termColor(t.Panel.Background)),
		noticeError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(termColor(t.Error)).
			Padding(1, 3).
			Foreground(termColor(t.Panel.Foreground)).
			Background(termColor(t.Panel.Background)),
		errorText: lipgloss.NewStyle().
			Bold(true).
			Foreground(termColor(t.Error)),
	}
}

// PaneWidths calculates the table and detail pane widths from a total width.
// The table gets 2/3 (minimum MinTableWidth), the detail pane gets the rest.
func PaneWidths(totalWidth int) (table, detail int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	table = totalWidth * 2 / 3
	if table < MinTableWidth {
		table = MinTableWidth
	}
	if table > totalWidth {
		table = totalWidth
	}
	detail = totalWidth - table
	return table, detail
}
