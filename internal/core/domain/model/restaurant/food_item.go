package restaurant

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrFoodItemIsNotConstructed is returned when using an improperly
	// initialized FoodItem.
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem constructor")
	// ErrFoodItemNameIsRequired is returned when the food item name is empty.
	ErrFoodItemNameIsRequired = errs.NewValueIsRequiredError("food item name")
)

// FoodItem is a menu entry: id, display name, and price. Identity is the id
// alone, so two items with the same id are the same menu entry regardless of
// name or price. The price is non-negative by Money construction, which is
// where the negative-price rejection policy lives.
//
// Name and price are mutable through Rename and ChangePrice; carts and
// orders snapshot the fields they need, so later menu edits do not rewrite
// history.
type FoodItem struct {
	id    kernel.ID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewFoodItem creates a FoodItem with the given id, name, and price.
// All violations are reported joined.
func NewFoodItem(id kernel.ID, name string, price kernel.Money) (*FoodItem, error) {
	item := &FoodItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the FoodItem was created through NewFoodItem.
func (f *FoodItem) Validate() error {
	if f == nil {
		return ErrFoodItemIsNotConstructed
	}
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

// ID returns the food item's identifier.
func (f *FoodItem) ID() kernel.ID {
	return f.id
}

// Name returns the food item's display name.
func (f *FoodItem) Name() string {
	return f.name
}

// Price returns the food item's current price.
func (f *FoodItem) Price() kernel.Money {
	return f.price
}

// IsEqual compares two food items by identifier.
func (f *FoodItem) IsEqual(other *FoodItem) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// Rename changes the display name. The new name must be non-empty.
func (f *FoodItem) Rename(name string) error {
	return f.setName(name)
}

// ChangePrice sets a new price. The price must be a constructed Money value,
// which is non-negative by definition.
func (f *FoodItem) ChangePrice(price kernel.Money) error {
	return f.setPrice(price)
}

func (f *FoodItem) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *FoodItem) setName(name string) error {
	if name == "" {
		return ErrFoodItemNameIsRequired
	}
	f.name = name
	return nil
}

func (f *FoodItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	f.price = price
	return nil
}
