// Package ui implements the contact manager window: an input form, a
// contact table projected from the store, and modal dialogs for choosing
// an image, editing a contact and acknowledging notices.
package ui

// Focus identifies the widget that receives typed keys.
type Focus int

const (
	FocusName  Focus = iota // Name text input.
	FocusPhone              // Phone text input.
	FocusTable              // Contact table.
)

// focusCount is the number of focusable widgets.
const focusCount = 3

// NoticeKind selects how a notice is styled.
type NoticeKind int

const (
	NoticeInfo  NoticeKind = iota // Outcome or information.
	NoticeError                   // A rule was violated.
)

// --- tea.Msg types ---

// imageChosenMsg carries the absolute path confirmed in the image chooser.
type imageChosenMsg struct {
	Path string
}

// imageCancelledMsg signals the image chooser was closed without a choice.
type imageCancelledMsg struct{}

// updateConfirmedMsg carries the replacement values for the contact with ID.
type updateConfirmedMsg struct {
	ID    string
	Name  string
	Phone string
}

// updateCancelledMsg signals the update prompt was closed without confirming.
type updateCancelledMsg struct{}

// Dialog identifies the modal dialog that owns the keyboard, if any.
type Dialog int

const (
	DialogNone   Dialog = iota // Main window has the keyboard.
	DialogNotice               // Acknowledgement notice.
	DialogPrompt               // Update prompt.
	DialogPicker               // Image chooser.
)
