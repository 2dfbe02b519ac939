package customer

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/person"
	"foodorder/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly
// initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a registered customer. It composes the
// shared person identity with the customer's single cart; there is no user
// type hierarchy.
//
// Invariants:
//   - The person identity is valid
//   - The customer owns exactly one cart, created with the customer and
//     emptied (never replaced) when an order is placed
type Customer struct {
	person person.Person
	cart   *Cart

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with an empty cart.
func NewCustomer(p person.Person) (*Customer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		person: p,
		cart:   NewCart(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a Customer from storage with their cart.
func RestoreCustomer(p person.Person, cart *Cart) (*Customer, error) {
	if err := errors.Join(p.Validate(), cart.Validate()); err != nil {
		return nil, err
	}

	return &Customer{
		person: p,
		cart:   cart,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's identifier.
func (c *Customer) ID() kernel.ID {
	return c.person.ID()
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.person.Name()
}

// Contact returns the customer's contact number.
func (c *Customer) Contact() string {
	return c.person.Contact()
}

// Person returns the customer's identity value.
func (c *Customer) Person() person.Person {
	return c.person
}

// Cart returns the customer's cart. Callers mutate the cart through its own
// methods; the instance is owned by the customer for their whole lifetime.
func (c *Customer) Cart() *Cart {
	return c.cart
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.person.ID().IsEqual(other.person.ID())
}
