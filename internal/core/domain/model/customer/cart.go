package customer

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when using an improperly
	// initialized Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	// ErrLineIsNotConstructed is returned when using an improperly
	// initialized Line.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
	// ErrCartIsEmpty is returned when an order placement is attempted on a
	// cart with no entries.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// Line is one cart entry: a snapshot of a menu item (id, name, price) plus
// the accumulated quantity. Lines are value objects; mutating the cart
// produces new lines.
type Line struct { //nolint:recvcheck //using for validation
	foodItemID kernel.ID
	name       string
	price      kernel.Money
	quantity   int

	guard guard.ConstructorGuard
}

// NewLine creates a cart line from its snapshot fields.
// Quantity must be positive.
func NewLine(foodItemID kernel.ID, name string, price kernel.Money, quantity int) (Line, error) {
	l := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setFoodItemID(foodItemID),
		l.setName(name),
		l.setPrice(price),
		l.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// FoodItemID returns the id of the snapshotted menu item.
func (l Line) FoodItemID() kernel.ID {
	return l.foodItemID
}

// Name returns the snapshotted item name.
func (l Line) Name() string {
	return l.name
}

// Price returns the snapshotted unit price.
func (l Line) Price() kernel.Money {
	return l.price
}

// Quantity returns the accumulated quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Cost returns price × quantity for this line.
func (l Line) Cost() (kernel.Money, error) {
	return l.price.MulInt(l.quantity)
}

func (l *Line) setFoodItemID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.foodItemID = id
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("food item name")
	}
	l.name = name
	return nil
}

func (l *Line) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

// Cart is a customer's in-progress selection of food items. Entries are
// keyed by food item id; adding an item already present merges quantities
// instead of duplicating the entry. Insertion order is kept so the cart
// renders deterministically.
type Cart struct {
	lines map[int]Line
	order []int

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines: make(map[int]Line),
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreCart reconstructs a cart from stored lines, preserving their order.
func RestoreCart(lines []Line) (*Cart, error) {
	cart := NewCart()

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		key := line.foodItemID.Int()
		if _, exists := cart.lines[key]; !exists {
			cart.order = append(cart.order, key)
		}
		cart.lines[key] = line
	}

	return cart, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Add merges a menu item into the cart. Quantity must be positive. If the
// item is already in the cart its quantity grows by the requested amount and
// the snapshot is refreshed to the item's current name and price.
func (c *Cart) Add(item *restaurant.FoodItem, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	key := item.ID().Int()
	total := quantity
	if existing, ok := c.lines[key]; ok {
		total += existing.quantity
	} else {
		c.order = append(c.order, key)
	}

	line, err := NewLine(item.ID(), item.Name(), item.Price(), total)
	if err != nil {
		return err
	}

	c.lines[key] = line
	return nil
}

// Remove drops the entry for the given food item id, whatever its quantity.
// Removing an absent id is a no-op.
func (c *Cart) Remove(foodItemID kernel.ID) {
	key := foodItemID.Int()
	if _, ok := c.lines[key]; !ok {
		return
	}

	delete(c.lines, key)
	for i, id := range c.order {
		if id == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart. The cart instance stays usable for future orders.
func (c *Cart) Clear() {
	c.lines = make(map[int]Line)
	c.order = nil
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the cart entries in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.lines))
	for _, key := range c.order {
		lines = append(lines, c.lines[key])
	}
	return lines
}

// TotalCost computes Σ(price × quantity) over the current entries.
// An empty cart totals zero; rendering the distinction between "empty" and
// "sums to zero" is the caller's job via IsEmpty.
func (c *Cart) TotalCost() (kernel.Money, error) {
	total := kernel.ZeroMoney()

	for _, key := range c.order {
		cost, err := c.lines[key].Cost()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(cost)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}
