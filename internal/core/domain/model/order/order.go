package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through a constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrLineIsNotConstructed is returned when using an improperly
	// initialized Line.
	ErrLineIsNotConstructed = errors.New("order Line must be created via NewLine constructor")
	// ErrLinesAreRequired is returned when creating an order without lines;
	// an order is always placed from a non-empty cart.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("order lines")
)

// Line is one snapshotted order entry: the menu item's id, name, and unit
// price as they were at placement time, plus the ordered quantity. Lines
// never change after the order is created; later menu or cart edits do not
// reach them.
type Line struct { //nolint:recvcheck //using for validation
	foodItemID kernel.ID
	name       string
	price      kernel.Money
	quantity   int

	guard guard.ConstructorGuard
}

// NewLine creates an order line from its snapshot fields.
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

// Quantity returns the ordered quantity.
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

// Order is the aggregate root for a placed order.
//
// Invariants:
//   - Must have a valid, registry-assigned identifier
//   - Must reference the customer who placed it
//   - Lines are a non-empty snapshot, immutable after creation
//   - Status starts as Pending
//   - Only status and the delivery person reference mutate post-creation;
//     attaching a delivery person does not touch the status
type Order struct {
	id               kernel.ID
	customerID       kernel.ID
	lines            []Line
	status           Status
	deliveryPersonID *kernel.ID

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from a cart snapshot.
//
// Parameters:
//   - id: the sequential identifier assigned by the registry
//   - customerID: the placing customer
//   - lines: the cart's entries at placement time (must be non-empty)
func NewOrder(id kernel.ID, customerID kernel.ID, lines []Line) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from storage with its persisted status
// and delivery assignment.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	lines []Line,
	status Status,
	deliveryPersonID *kernel.ID,
) (*Order, error) {
	o, err := NewOrder(id, customerID, lines)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if deliveryPersonID != nil {
		if err := o.AssignDeliveryPerson(*deliveryPersonID); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// Lines returns the snapshotted entries. The slice is a copy.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPersonID returns the assigned delivery person's id, or nil when
// nobody is assigned yet.
func (o *Order) DeliveryPersonID() *kernel.ID {
	if o.deliveryPersonID == nil {
		return nil
	}
	id := *o.deliveryPersonID
	return &id
}

// Total computes Σ(price × quantity) over the snapshot.
func (o *Order) Total() (kernel.Money, error) {
	total := kernel.ZeroMoney()

	for _, line := range o.lines {
		cost, err := line.Cost()
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

// AssignDeliveryPerson attaches a delivery person reference to the order.
// Reassignment overwrites the previous reference. The status is left exactly
// as it was: the source system never flipped it on assignment, and the
// administrator moves it explicitly via SetStatus.
func (o *Order) AssignDeliveryPerson(deliveryPersonID kernel.ID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	o.deliveryPersonID = &deliveryPersonID
	return nil
}

// SetStatus overwrites the order's status with any valid status value.
// No transition rules are enforced.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	copied := make([]Line, len(lines))
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		copied[i] = line
	}

	o.lines = copied
	return nil
}
