package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/thumbnail"
)

// headerChrome is the title, the three form rows and the spacer under the
// action bar. The action bar adds one line per row it wraps to.
const headerChrome = 5

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the contact manager window.
//
// The store is the single source of truth: actions call the store, and the
// table redraws from the store's Render callback. Model never edits rows.
type Model struct {
	store  *contact.Store
	table  *contactTable
	thumbs *thumbnail.Cache

	theme      Theme
	styles     styles
	keys       windowKeys
	tableKeys  tableKeys
	pickerDir  string
	extensions []string
	thumbCols  int
	thumbRows  int

	form       form
	focus      Focus
	selectedID string

	notice *notice
	prompt *updatePrompt
	picker *imagePicker

	detail viewport.Model
	help   help.Model
	width  int
	height int
}

// ModelOption configures optional Model settings.
type ModelOption func(*Model)

// WithTheme sets the colour scheme.
func WithTheme(t Theme) ModelOption {
	return func(m *Model) { m.theme = t }
}

// WithThumbnailSize sets the thumbnail bound in terminal cells.
func WithThumbnailSize(cols, rows int) ModelOption {
	return func(m *Model) {
		m.thumbCols = cols
		m.thumbRows = rows
	}
}

// WithPickerDir sets the directory the image chooser opens in.
func WithPickerDir(dir string) ModelOption {
	return func(m *Model) { m.pickerDir = dir }
}

// WithImageExtensions limits the image chooser to files with these extensions.
func WithImageExtensions(exts ...string) ModelOption {
	return func(m *Model) { m.extensions = append([]string(nil), exts...) }
}

// WithWindowSize sets the layout size used until the terminal reports its own.
func WithWindowSize(width, height int) ModelOption {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// NewModel creates the window over store with focus on the name field.
// The table subscribes to store and renders its current contents at once.
func NewModel(store *contact.Store, opts ...ModelOption) Model {
	m := Model{
		store:      store,
		theme:      DefaultTheme(),
		keys:       WindowKeyMap(),
		tableKeys:  TableKeyMap(),
		pickerDir:  ".",
		extensions: []string{".png", ".jpg", ".jpeg", ".gif"},
		thumbCols:  10,
		thumbRows:  5,
		width:      80,
		height:     30,
		focus:      FocusName,
		help:       help.New(),
		detail:     viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if abs, err := filepath.Abs(m.pickerDir); err == nil {
		m.pickerDir = abs
	}

	m.styles = newStyles(m.theme)
	m.form = newForm(m.styles)
	m.thumbs = thumbnail.NewCache(m.theme.thumbnailBackground())
	m.table = newContactTable(m.thumbs, m.thumbCols, m.thumbRows)
	store.Subscribe(m.table)
	m.layout()
	return m
}

// Init starts the text cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages. Dialogs own the keyboard while open.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.picker != nil {
			cmd, _ := m.picker.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()})
			return m, cmd
		}
		return m, nil

	case imageChosenMsg:
		m.picker = nil
		// The file may have changed on disk since it was last decoded.
		m.thumbs.Invalidate()
		m.form.pendingImage = msg.Path
		m.notice = newNotice(NoticeInfo, msgImageSelected+filepath.Base(msg.Path))
		return m, nil

	case imageCancelledMsg:
		m.picker = nil
		m.form.pendingImage = ""
		m.notice = newNotice(NoticeInfo, msgNoImage)
		return m, nil

	case updateConfirmedMsg:
		m.prompt = nil
		return m.applyUpdate(msg)

	case updateCancelledMsg:
		m.prompt = nil
		m.notice = newNotice(NoticeInfo, msgUpdateCanceled)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, m.forward(msg)
}

// forward hands non-key messages (directory reads, cursor blinks) to every
// live widget; each ignores what is not addressed to it.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if m.picker != nil {
		cmd, _ := m.picker.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.prompt != nil {
		cmd, _ := m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.form.update(m.focus, msg))
	return tea.Batch(cmds...)
}

// handleKey routes a key to the open dialog, or to the window.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.notice != nil:
		if m.notice.Update(msg) {
			m.notice = nil
		}
		return m, nil

	case m.prompt != nil:
		cmd, closed := m.prompt.Update(msg)
		if closed {
			m.prompt = nil
		}
		return m, cmd

	case m.picker != nil:
		cmd, closed := m.picker.Update(msg)
		if closed {
			m.picker = nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		return m.add()
	case key.Matches(msg, m.keys.ChooseImage):
		return m.openPicker()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Update):
		return m.openUpdate()
	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus == FocusTable {
		return m.handleTableKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.add()
	}
	return m, m.form.update(m.focus, msg)
}

// handleTableKey moves the selection or runs a row action.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.tableKeys.Up):
		m.table.move(-1)
		m.selectCurrent()
	case key.Matches(msg, m.tableKeys.Down):
		m.table.move(1)
		m.selectCurrent()
	case key.Matches(msg, m.tableKeys.Update):
		return m.openUpdate()
	case key.Matches(msg, m.tableKeys.Delete):
		return m.deleteSelected()
	}
	return m, nil
}

// setFocus moves keyboard focus. Entering the table selects the row under
// the cursor when nothing is selected yet.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	cmd := m.form.focus(f)
	if f == FocusTable {
		if i := m.table.indexOf(m.selectedID); i >= 0 {
			m.table.moveTo(i)
		} else {
			m.selectCurrent()
		}
	}
	return cmd
}

// selectCurrent selects the contact under the table cursor, if any.
func (m *Model) selectCurrent() {
	if c, ok := m.table.current(); ok {
		m.selectedID = c.ID
		return
	}
	m.selectedID = ""
}

// selectedIndex returns the store position of the selection, or -1.
func (m Model) selectedIndex() int {
	if m.selectedID == "" {
		return -1
	}
	return m.store.IndexOf(m.selectedID)
}

// syncSelection drops a selection whose contact is gone and keeps the
// cursor on it otherwise.
func (m *Model) syncSelection() {
	if m.selectedID == "" {
		return
	}
	i := m.table.indexOf(m.selectedID)
	if i < 0 {
		m.selectedID = ""
		return
	}
	m.table.moveTo(i)
}

// add creates a contact from the form and the pending image.
func (m Model) add() (tea.Model, tea.Cmd) {
	name, phone := m.form.values()
	if _, err := m.store.Add(name, phone, m.form.pendingImage); err != nil {
		m.notice = errorNotice(err)
		return m, nil
	}
	m.form.reset()
	m.syncSelection()
	m.notice = newNotice(NoticeInfo, msgAdded)
	return m, nil
}

// openPicker opens the image chooser.
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	m.picker = newImagePicker(m.pickerDir, m.extensions)
	return m, m.picker.Init(m.width, m.bodyHeight())
}

// openUpdate opens the update prompt for the selected contact.
func (m Model) openUpdate() (tea.Model, tea.Cmd) {
	i := m.selectedIndex()
	if i < 0 {
		m.notice = newNotice(NoticeInfo, msgSelectUpdate)
		return m, nil
	}
	m.prompt = newUpdatePrompt(m.store.List()[i], m.styles)
	return m, textinput.Blink
}

// applyUpdate writes confirmed prompt values through the store. The target
// is looked up by ID because positions may have shifted.
func (m Model) applyUpdate(msg updateConfirmedMsg) (tea.Model, tea.Cmd) {
	if err := m.store.Update(m.store.IndexOf(msg.ID), msg.Name, msg.Phone); err != nil {
		m.notice = errorNotice(err)
		return m, nil
	}
	m.syncSelection()
	m.notice = newNotice(NoticeInfo, msgUpdated)
	return m, nil
}

// deleteSelected removes the selected contact and clears the selection.
func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	i := m.selectedIndex()
	if i < 0 {
		m.notice = newNotice(NoticeInfo, msgSelectDelete)
		return m, nil
	}
	if err := m.store.Delete(i); err != nil {
		m.notice = errorNotice(err)
		return m, nil
	}
	m.selectedID = ""
	m.notice = newNotice(NoticeInfo, msgDeleted)
	return m, nil
}

// --- Accessors ---

// Dialog returns the dialog that owns the keyboard.
func (m Model) Dialog() Dialog {
	switch {
	case m.notice != nil:
		return DialogNotice
	case m.prompt != nil:
		return DialogPrompt
	case m.picker != nil:
		return DialogPicker
	default:
		return DialogNone
	}
}

// Notice returns the text of the open notice, or "".
func (m Model) Notice() string {
	if m.notice == nil {
		return ""
	}
	return m.notice.text
}

// Focus returns the focused widget.
func (m Model) Focus() Focus {
	return m.focus
}

// SelectedID returns the ID of the selected contact, or "".
func (m Model) SelectedID() string {
	return m.selectedID
}

// PendingImage returns the image path waiting for the next add, or "".
func (m Model) PendingImage() string {
	return m.form.pendingImage
}

// --- Layout ---

// bodyHeight is the height available below the form for panes or dialogs.
func (m Model) bodyHeight() int {
	h := m.height - m.headerHeight() - helpBarHeight
	if h < borderChrome+1 {
		return borderChrome + 1
	}
	return h
}

// headerHeight is the number of lines above the body.
func (m Model) headerHeight() int {
	return headerChrome + lipgloss.Height(m.viewActions())
}

// layout resizes every widget for the current window size.
func (m *Model) layout() {
	m.help.Width = m.width
	_, detailWidth := PaneWidths(m.width)
	inner := m.bodyHeight() - borderChrome
	m.table.setHeight(inner)
	m.detail.Width = max(detailWidth-borderChrome, 0)
	m.detail.Height = inner
}

// View renders the window: title, form, action bar, then either the panes
// or the open dialog, and the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Contact Manager"),
		m.form.View(m.styles),
		m.viewActions(),
		"",
	)

	var body string
	bodyHeight := m.bodyHeight()
	switch {
	case m.notice != nil:
		body = m.notice.View(m.styles, m.width, bodyHeight)
	case m.prompt != nil:
		body = m.prompt.View(m.styles, m.width, bodyHeight)
	case m.picker != nil:
		body = m.picker.View(m.styles, m.width, bodyHeight)
	default:
		body = m.viewPanes(bodyHeight)
	}

	helpView := m.help.View(HelpBindings(m.Dialog(), m.focus))
	return m.styles.window.
		Width(m.width).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body, helpView))
}

// viewActions renders the four action buttons with their keys, wrapping
// onto further rows when they do not fit the window width.
func (m Model) viewActions() string {
	button := func(label string, b key.Binding) string {
		return m.styles.button.Render(label) + " " + m.styles.buttonKey.Render(b.Help().Key)
	}
	buttons := []string{
		button("Add", m.keys.Add),
		button("Image", m.keys.ChooseImage),
		button("Delete", m.keys.Delete),
		button("Update", m.keys.Update),
	}

	const gap = "  "
	var rows []string
	row := ""
	for _, b := range buttons {
		switch {
		case row == "":
			row = b
		case lipgloss.Width(row+gap+b) <= m.width:
			row += gap + b
		default:
			rows = append(rows, row)
			row = b
		}
	}
	rows = append(rows, row)
	return strings.Join(rows, "\n")
}

// viewPanes renders the table and detail panes side by side.
func (m Model) viewPanes(height int) string {
	tableWidth, detailWidth := PaneWidths(m.width)
	inner := height - borderChrome

	tableStyle, detailStyle := m.styles.unfocused, m.styles.unfocused
	if m.focus == FocusTable {
		tableStyle = m.styles.focused
	}

	tablePane := tableStyle.
		Width(max(tableWidth-borderChrome, 0)).
		Height(inner).
		MaxHeight(height).
		Render(m.table.View(m.styles, tableWidth-borderChrome, m.selectedID))

	if detailWidth <= borderChrome {
		return tablePane
	}
	m.detail.SetContent(m.viewDetail())
	detailPane := detailStyle.
		Width(detailWidth - borderChrome).
		Height(inner).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, tablePane, detailPane)
}

// viewDetail renders the selected contact with its thumbnail.
func (m Model) viewDetail() string {
	i := m.table.indexOf(m.selectedID)
	if i < 0 {
		return m.styles.muted.Render("Select a contact (tab to the table) to see its details.")
	}
	c := m.table.rows[i]

	var b strings.Builder
	b.WriteString(m.styles.label.Render("Name:  ") + c.Name + "\n")
	b.WriteString(m.styles.label.Render("Phone: ") + c.Phone + "\n")
	if !c.HasImage() {
		b.WriteString(m.styles.label.Render("Image: ") + m.styles.muted.Render("none"))
		return b.String()
	}
	b.WriteString(m.styles.label.Render("Image: ") + filepath.Base(c.ImagePath) + "\n")
	b.WriteString(m.styles.muted.Render(c.ImagePath) + "\n\n")
	view, err := m.thumbs.Get(c.ImagePath, m.thumbCols, m.thumbRows)
	if err != nil {
		view = m.styles.errorText.Render(view)
	}
	b.WriteString(view)
	return b.String()
}
