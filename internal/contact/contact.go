// Package contact holds the in-memory contact list and its validation rules.
package contact

import "errors"

// MinPhoneLength is the minimum number of digits in a phone number.
const MinPhoneLength = 10

// Contact is a single entry in the contact list.
// ImagePath is empty when no photo was chosen.
type Contact struct {
	ID        string
	Name      string
	Phone     string
	ImagePath string
}

// HasImage reports whether the contact carries a photo reference.
func (c Contact) HasImage() bool {
	return c.ImagePath != ""
}

var (
	// ErrEmptyName indicates a contact name with no characters.
	ErrEmptyName = errors.New("contact: name cannot be empty")

	// ErrInvalidPhone indicates a phone number that is too short or has non-digits.
	ErrInvalidPhone = errors.New("contact: phone must be at least 10 digits and contain only numbers")

	// ErrIndexOutOfRange indicates a position that does not address an existing contact.
	ErrIndexOutOfRange = errors.New("contact: index out of range")
)

// Validate checks name and phone against the contact rules.
// The name is checked first, so an input failing both reports ErrEmptyName.
func Validate(name, phone string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !validPhone(phone) {
		return ErrInvalidPhone
	}
	return nil
}

func validPhone(phone string) bool {
	if len(phone) < MinPhoneLength {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}
