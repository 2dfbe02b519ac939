// Package delivery contains the delivery staff registry entity. Delivery
// persons are registered by the administrator and referenced, never owned,
// by orders.
package delivery

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/person"
	"foodorder/internal/pkg/guard"
)

// ErrPersonIsNotConstructed is returned when using an improperly initialized
// delivery Person.
var ErrPersonIsNotConstructed = errors.New("delivery Person must be created via NewPerson constructor")

// Person is a delivery staff member: the shared person identity and nothing
// more. Assignment to orders is tracked on the order side; the entity itself
// carries no workload state.
type Person struct {
	person person.Person

	guard guard.ConstructorGuard
}

// NewPerson registers a delivery staff member with the given identity.
func NewPerson(p person.Person) (*Person, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Person{
		person: p,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Person was created through NewPerson.
func (d *Person) Validate() error {
	if d == nil {
		return ErrPersonIsNotConstructed
	}
	return d.guard.Validate(ErrPersonIsNotConstructed)
}

// ID returns the delivery person's identifier.
func (d *Person) ID() kernel.ID {
	return d.person.ID()
}

// Name returns the delivery person's display name.
func (d *Person) Name() string {
	return d.person.Name()
}

// Contact returns the delivery person's contact number.
func (d *Person) Contact() string {
	return d.person.Contact()
}

// Person returns the identity value.
func (d *Person) Person() person.Person {
	return d.person
}

// IsEqual compares two delivery persons by identifier.
func (d *Person) IsEqual(other *Person) bool {
	return other != nil && d.person.ID().IsEqual(other.person.ID())
}
