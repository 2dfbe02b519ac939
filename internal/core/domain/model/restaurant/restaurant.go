package restaurant

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when using an improperly
	// initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	// ErrRestaurantNameIsRequired is returned when the restaurant name is empty.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("restaurant name")
)

// Restaurant is the aggregate root for a restaurant and its menu.
//
// Invariants:
//   - Must have a valid identifier and a non-empty name
//   - Menu entries are unique by food item id
//   - Menu keeps insertion order for deterministic listings
//   - Can only be created through NewRestaurant or RestoreRestaurant
type Restaurant struct {
	id   kernel.ID
	name string
	menu []*FoodItem

	guard guard.ConstructorGuard
}

// NewRestaurant creates a Restaurant with an empty menu.
func NewRestaurant(id kernel.ID, name string) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from storage, menu included.
// The restored aggregate behaves identically to one built through normal
// domain operations.
func RestoreRestaurant(id kernel.ID, name string, menu []*FoodItem) (*Restaurant, error) {
	r, err := NewRestaurant(id, name)
	if err != nil {
		return nil, err
	}

	for _, item := range menu {
		if err := r.AddFoodItem(item); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's identifier.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Menu returns the menu in insertion order. The slice is a copy; the food
// items are the aggregate's own.
func (r *Restaurant) Menu() []*FoodItem {
	menu := make([]*FoodItem, len(r.menu))
	copy(menu, r.menu)
	return menu
}

// IsEqual compares two restaurants by identifier.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// AddFoodItem puts a food item on the menu. A new id is appended; an id
// already on the menu is overwritten in place, keeping its position.
func (r *Restaurant) AddFoodItem(item *FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i, existing := range r.menu {
		if existing.id.IsEqual(item.id) {
			r.menu[i] = item
			return nil
		}
	}

	r.menu = append(r.menu, item)
	return nil
}

// RemoveFoodItem takes a food item off the menu. Removing an id that is not
// on the menu is a no-op; removal is tolerant by contract.
func (r *Restaurant) RemoveFoodItem(foodItemID kernel.ID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	for i, item := range r.menu {
		if item.id.IsEqual(foodItemID) {
			r.menu = append(r.menu[:i], r.menu[i+1:]...)
			return nil
		}
	}

	return nil
}

// MenuItem looks up a menu entry by food item id.
// Returns an ObjectNotFound error when the id is not on the menu.
func (r *Restaurant) MenuItem(foodItemID kernel.ID) (*FoodItem, error) {
	if err := foodItemID.Validate(); err != nil {
		return nil, err
	}

	for _, item := range r.menu {
		if item.id.IsEqual(foodItemID) {
			return item, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("foodItemId", foodItemID.Int())
}

func (r *Restaurant) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	r.name = name
	return nil
}
