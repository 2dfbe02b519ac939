package cli

import (
	"errors"
	"fmt"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

func (c *CLI) money(m kernel.Money) string {
	return c.currency + m.String()
}

func (c *CLI) renderRestaurants(restaurants []queries.ListRestaurantsQueryResponse) {
	if len(restaurants) == 0 {
		fmt.Fprintln(c.out, "No restaurants registered yet.")
		return
	}

	for _, r := range restaurants {
		fmt.Fprintf(c.out, "[%s] %s\n", r.ID, r.Name)
		if len(r.Menu) == 0 {
			fmt.Fprintln(c.out, "  (menu is empty)")
			continue
		}
		for _, item := range r.Menu {
			fmt.Fprintf(c.out, "  [%s] %s %s\n", item.ID, item.Name, c.money(item.Price))
		}
	}
}

func (c *CLI) renderCart(cart queries.ViewCartQueryResponse) {
	if cart.Empty {
		fmt.Fprintln(c.out, "Cart is empty.")
		return
	}

	for _, line := range cart.Lines {
		fmt.Fprintf(c.out, "[%s] %s %s x %d = %s\n",
			line.FoodItemID, line.Name, c.money(line.Price), line.Quantity, c.money(line.Cost))
	}
	fmt.Fprintf(c.out, "Total: %s\n", c.money(cart.Total))
}

func (c *CLI) renderOrders(orders []queries.OrderResponse) {
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "No orders yet.")
		return
	}

	for _, o := range orders {
		assigned := "unassigned"
		if o.DeliveryPersonID != nil {
			assigned = "delivery person " + o.DeliveryPersonID.String()
		}
		fmt.Fprintf(c.out, "Order %s (customer %s, %s, %s)\n", o.ID, o.CustomerID, o.Status, assigned)
		for _, line := range o.Lines {
			fmt.Fprintf(c.out, "  [%s] %s %s x %d = %s\n",
				line.FoodItemID, line.Name, c.money(line.Price), line.Quantity, c.money(line.Cost))
		}
		fmt.Fprintf(c.out, "  Total: %s\n", c.money(o.Total))
	}
}

func (c *CLI) renderDeliveryPersons(persons []queries.DeliveryPersonResponse) {
	if len(persons) == 0 {
		fmt.Fprintln(c.out, "No delivery staff registered yet.")
		return
	}

	for _, p := range persons {
		fmt.Fprintf(c.out, "[%s] %s (%s)\n", p.ID, p.Name, p.Contact)
	}
}

// renderError translates error kinds into operator-friendly text. The menu
// loop keeps running; the registry is unchanged after any failed operation.
func (c *CLI) renderError(err error) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		fmt.Fprintf(c.out, "Not found: %s\n", err)
	case errors.Is(err, errs.ErrDuplicateKey):
		fmt.Fprintf(c.out, "Already exists: %s\n", err)
	case errors.Is(err, customer.ErrCartIsEmpty):
		fmt.Fprintln(c.out, "Cart is empty, nothing to order.")
	default:
		fmt.Fprintf(c.out, "Error: %s\n", err)
	}
	c.logger.Warn("operation failed", "error", err)
}
