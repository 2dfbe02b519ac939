// Package person holds the shared identity value object for people in the
// system. Customers and delivery staff both carry a Person rather than
// inheriting from a common user type; composition keeps the shared fields
// (id, name, contact) in one place without a type hierarchy.
package person

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrPersonIsNotConstructed is returned when using an improperly
	// initialized Person.
	ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")
	// ErrNameIsRequired is returned when the name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrContactIsRequired is returned when the contact is empty.
	ErrContactIsRequired = errs.NewValueIsRequiredError("contact")
)

// Person is an immutable identity value: id, display name, and contact
// number. The contact is kept as a string as entered; whether it is numeric
// is the input layer's concern.
type Person struct { //nolint:recvcheck //using for validation
	id      kernel.ID
	name    string
	contact string

	guard guard.ConstructorGuard
}

// NewPerson creates a Person with the given identity fields.
// The id must be valid and name and contact must be non-empty;
// violations are reported joined.
func NewPerson(id kernel.ID, name string, contact string) (Person, error) {
	p := Person{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setContact(contact),
	); err != nil {
		return Person{}, err
	}

	return p, nil
}

// Validate ensures the Person was created through NewPerson.
func (p Person) Validate() error {
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

// ID returns the person's identifier.
func (p Person) ID() kernel.ID {
	return p.id
}

// Name returns the person's display name.
func (p Person) Name() string {
	return p.name
}

// Contact returns the person's contact number as entered.
func (p Person) Contact() string {
	return p.contact
}

// IsEqual compares two persons by identifier.
func (p Person) IsEqual(other Person) bool {
	return p.id.IsEqual(other.id)
}

func (p *Person) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Person) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Person) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}
	p.contact = contact
	return nil
}
