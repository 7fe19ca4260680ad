package contact

import (
	"fmt"

	"github.com/google/uuid"
)

// Renderer receives the full ordered contact list after every successful
// mutation. Views implement it to stay a projection of the store. Each
// renderer gets its own copy, so writes to it reach neither the store nor
// other renderers.
type Renderer interface {
	Render(contacts []Contact)
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(contacts []Contact)

// Render calls f(contacts).
func (f RenderFunc) Render(contacts []Contact) {
	f(contacts)
}

// Store is the ordered contact list. Contacts are addressed by position;
// every structural change shifts later positions, so callers must not
// cache indices across mutations (use IndexOf with the contact ID).
//
// Store is not safe for concurrent use. The UI confines it to the
// Bubble Tea update loop.
type Store struct {
	contacts  []Contact
	renderers []Renderer
	newID     func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store) error

// WithIDFunc sets the generator for contact IDs. The default yields UUIDv7 strings.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *Store) error {
		s.newID = fn
		return nil
	}
}

// WithContacts seeds the store. Each seed is validated and gets a fresh ID;
// the first invalid seed aborts construction.
func WithContacts(seeds ...Contact) StoreOption {
	return func(s *Store) error {
		for i, c := range seeds {
			if err := Validate(c.Name, c.Phone); err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
			s.contacts = append(s.contacts, Contact{
				ID:        s.newID(),
				Name:      c.Name,
				Phone:     c.Phone,
				ImagePath: c.ImagePath,
			})
		}
		return nil
	}
}

// NewStore creates an empty Store and applies opts in order.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{newID: newUUID}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Subscribe registers r and renders the current contents to it once.
func (s *Store) Subscribe(r Renderer) {
	s.renderers = append(s.renderers, r)
	r.Render(s.List())
}

// Add validates name and phone, then appends a new contact.
// imagePath may be empty.
func (s *Store) Add(name, phone, imagePath string) (Contact, error) {
	if err := Validate(name, phone); err != nil {
		return Contact{}, err
	}
	c := Contact{
		ID:        s.newID(),
		Name:      name,
		Phone:     phone,
		ImagePath: imagePath,
	}
	s.contacts = append(s.contacts, c)
	s.notify()
	return c, nil
}

// Update replaces the name and phone of the contact at index.
// The ID and image path are kept.
func (s *Store) Update(index int, name, phone string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := Validate(name, phone); err != nil {
		return err
	}
	s.contacts[index].Name = name
	s.contacts[index].Phone = phone
	s.notify()
	return nil
}

// Delete removes the contact at index, shifting later contacts down by one.
func (s *Store) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.contacts = append(s.contacts[:index], s.contacts[index+1:]...)
	s.notify()
	return nil
}

// List returns a copy of the contacts in order.
func (s *Store) List() []Contact {
	return append([]Contact(nil), s.contacts...)
}

// Len returns the number of contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// IndexOf returns the current position of the contact with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.contacts) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.contacts))
	}
	return nil
}

func (s *Store) notify() {
	for _, r := range s.renderers {
		r.Render(s.List())
	}
}
