package kernel

import (
	"strconv"

	"foodorder/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not created through NewID.
// It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object that identifies an entity: a restaurant, a food item,
// a customer, a delivery person, or an order. Identifiers are positive
// integers; the zero value is invalid and fails Validate, so an ID obtained
// any way other than NewID is detectable.
//
// ID is immutable and safe to copy and compare.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle invalid id
//	}
//	fmt.Println(id) // "42"
type ID struct {
	value int
}

// NewID creates an ID from a raw integer. The value must be positive;
// anything else returns a ValueIsInvalid error.
func NewID(value int) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidError("id must be a positive integer")
	}
	return ID{value: value}, nil
}

// Int returns the raw integer value of the identifier.
func (i ID) Int() int {
	return i.value
}

// String returns the decimal representation of the identifier.
// It implements fmt.Stringer.
func (i ID) String() string {
	return strconv.Itoa(i.value)
}

// IsEqual reports whether two identifiers refer to the same entity.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks that the ID was constructed via NewID.
// The zero value fails with ErrIDIsNotConstructed.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
