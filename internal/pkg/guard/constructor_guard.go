// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries to ensure instances are only created
// through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated without a more specific error to report.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed one in a struct and set it via NewConstructorGuard inside
// the constructor; a struct created any other way carries a zero-value
// guard and fails Validate.
//
// Example:
//
//	type FoodItem struct {
//	    id    int
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewFoodItem(id int, name string) (FoodItem, error) {
//	    if name == "" {
//	        return FoodItem{}, errors.New("name is required")
//	    }
//	    return FoodItem{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f FoodItem) Validate() error {
//	    return f.guard.Validate(ErrFoodItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
