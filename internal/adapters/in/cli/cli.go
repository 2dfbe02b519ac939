// Package cli implements the interactive text menu over the command and
// query handlers. It owns prompting, input parsing with re-prompt on invalid
// values, and rendering; every business decision stays behind the handlers.
// Input and output are injected, so the whole menu can be driven by a
// scripted reader in tests.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
)

// Handlers bundles every use case the menu exposes.
type Handlers struct {
	CreateRestaurant     commands.CreateRestaurantCommandHandler
	AddFoodItem          commands.AddFoodItemCommandHandler
	RemoveFoodItem       commands.RemoveFoodItemCommandHandler
	CreateCustomer       commands.CreateCustomerCommandHandler
	CreateDeliveryPerson commands.CreateDeliveryPersonCommandHandler
	AddToCart            commands.AddToCartCommandHandler
	RemoveFromCart       commands.RemoveFromCartCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	AssignDeliveryPerson commands.AssignDeliveryPersonCommandHandler
	SetOrderStatus       commands.SetOrderStatusCommandHandler

	ListRestaurants       queries.ListRestaurantsQueryHandler
	ViewCart              queries.ViewCartQueryHandler
	ListOrders            queries.ListOrdersQueryHandler
	ListOrdersForCustomer queries.ListOrdersForCustomerQueryHandler
	ListDeliveryPersons   queries.ListDeliveryPersonsQueryHandler
	GetDeliveryPerson     queries.GetDeliveryPersonQueryHandler
}

// CLI is the interactive menu loop.
type CLI struct {
	in       *bufio.Scanner
	out      io.Writer
	handlers Handlers
	logger   *slog.Logger
	currency string
}

// New creates a menu bound to the given input and output streams.
// The currency string prefixes every rendered amount.
func New(in io.Reader, out io.Writer, handlers Handlers, logger *slog.Logger, currency string) *CLI {
	return &CLI{
		in:       bufio.NewScanner(in),
		out:      out,
		handlers: handlers,
		logger:   logger,
		currency: currency,
	}
}

// Run drives the menu until the user exits or the input stream ends.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== Food Ordering System ===")

	for {
		fmt.Fprintln(c.out, "\n1. Admin menu")
		fmt.Fprintln(c.out, "2. Customer menu")
		fmt.Fprintln(c.out, "0. Exit")

		choice, err := c.readInt("> ")
		if err != nil {
			if isInputClosed(err) {
				return nil
			}
			return err
		}

		switch choice {
		case 1:
			err = c.adminMenu(ctx)
		case 2:
			err = c.customerMenu(ctx)
		case 0:
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}

		if err != nil {
			if isInputClosed(err) {
				return nil
			}
			return err
		}
	}
}

func (c *CLI) adminMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, "\n--- Admin ---")
		fmt.Fprintln(c.out, "1. Create restaurant")
		fmt.Fprintln(c.out, "2. Add food item")
		fmt.Fprintln(c.out, "3. Remove food item")
		fmt.Fprintln(c.out, "4. List restaurants")
		fmt.Fprintln(c.out, "5. Create delivery person")
		fmt.Fprintln(c.out, "6. List delivery staff")
		fmt.Fprintln(c.out, "7. Assign delivery person")
		fmt.Fprintln(c.out, "8. Set order status")
		fmt.Fprintln(c.out, "9. List orders")
		fmt.Fprintln(c.out, "0. Back")

		choice, err := c.readInt("> ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.createRestaurant(ctx)
		case 2:
			err = c.addFoodItem(ctx)
		case 3:
			err = c.removeFoodItem(ctx)
		case 4:
			err = c.listRestaurants(ctx)
		case 5:
			err = c.createDeliveryPerson(ctx)
		case 6:
			err = c.listDeliveryPersons(ctx)
		case 7:
			err = c.assignDeliveryPerson(ctx)
		case 8:
			err = c.setOrderStatus(ctx)
		case 9:
			err = c.listOrders(ctx)
		case 0:
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}

		if err != nil {
			return err
		}
	}
}

func (c *CLI) customerMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, "\n--- Customer ---")
		fmt.Fprintln(c.out, "1. Register")
		fmt.Fprintln(c.out, "2. List restaurants")
		fmt.Fprintln(c.out, "3. Add to cart")
		fmt.Fprintln(c.out, "4. View cart")
		fmt.Fprintln(c.out, "5. Remove from cart")
		fmt.Fprintln(c.out, "6. Place order")
		fmt.Fprintln(c.out, "7. My orders")
		fmt.Fprintln(c.out, "0. Back")

		choice, err := c.readInt("> ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.createCustomer(ctx)
		case 2:
			err = c.listRestaurants(ctx)
		case 3:
			err = c.addToCart(ctx)
		case 4:
			err = c.viewCart(ctx)
		case 5:
			err = c.removeFromCart(ctx)
		case 6:
			err = c.placeOrder(ctx)
		case 7:
			err = c.listMyOrders(ctx)
		case 0:
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}

		if err != nil {
			return err
		}
	}
}

func (c *CLI) createRestaurant(ctx context.Context) error {
	id, err := c.readID("Restaurant id: ")
	if err != nil {
		return err
	}
	name, err := c.readLine("Name: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateRestaurantCommand(id, name)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.CreateRestaurant.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintf(c.out, "Restaurant %s created.\n", id)
	return nil
}

func (c *CLI) addFoodItem(ctx context.Context) error {
	restaurantID, err := c.readID("Restaurant id: ")
	if err != nil {
		return err
	}
	foodItemID, err := c.readID("Food item id: ")
	if err != nil {
		return err
	}
	name, err := c.readLine("Name: ")
	if err != nil {
		return err
	}
	price, err := c.readMoney("Price: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddFoodItemCommand(restaurantID, foodItemID, name, price)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.AddFoodItem.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintf(c.out, "%s added to the menu.\n", name)
	return nil
}

func (c *CLI) removeFoodItem(ctx context.Context) error {
	restaurantID, err := c.readID("Restaurant id: ")
	if err != nil {
		return err
	}
	foodItemID, err := c.readID("Food item id: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveFoodItemCommand(restaurantID, foodItemID)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.RemoveFoodItem.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintln(c.out, "Removed.")
	return nil
}

func (c *CLI) listRestaurants(ctx context.Context) error {
	restaurants, err := c.handlers.ListRestaurants.Handle(ctx, queries.NewListRestaurantsQuery())
	if err != nil {
		c.renderError(err)
		return nil
	}

	c.renderRestaurants(restaurants)
	return nil
}

func (c *CLI) createDeliveryPerson(ctx context.Context) error {
	id, err := c.readID("Delivery person id: ")
	if err != nil {
		return err
	}
	name, err := c.readLine("Name: ")
	if err != nil {
		return err
	}
	contact, err := c.readLine("Contact: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateDeliveryPersonCommand(id, name, contact)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.CreateDeliveryPerson.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintf(c.out, "%s joined the delivery staff.\n", name)
	return nil
}

func (c *CLI) listDeliveryPersons(ctx context.Context) error {
	persons, err := c.handlers.ListDeliveryPersons.Handle(ctx, queries.NewListDeliveryPersonsQuery())
	if err != nil {
		c.renderError(err)
		return nil
	}

	c.renderDeliveryPersons(persons)
	return nil
}

func (c *CLI) assignDeliveryPerson(ctx context.Context) error {
	orderID, err := c.readID("Order id: ")
	if err != nil {
		return err
	}
	deliveryPersonID, err := c.readID("Delivery person id: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDeliveryPersonCommand(orderID, deliveryPersonID)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.AssignDeliveryPerson.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	query, err := queries.NewGetDeliveryPersonQuery(deliveryPersonID)
	if err != nil {
		c.renderError(err)
		return nil
	}
	person, err := c.handlers.GetDeliveryPerson.Handle(ctx, query)
	if err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintf(c.out, "Order %s assigned to %s.\n", orderID, person.Name)
	return nil
}

func (c *CLI) setOrderStatus(ctx context.Context) error {
	orderID, err := c.readID("Order id: ")
	if err != nil {
		return err
	}
	status, err := c.readStatus("Status: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.SetOrderStatus.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintf(c.out, "Order %s is now %s.\n", orderID, status)
	return nil
}

func (c *CLI) listOrders(ctx context.Context) error {
	orders, err := c.handlers.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		c.renderError(err)
		return nil
	}

	c.renderOrders(orders)
	return nil
}

func (c *CLI) createCustomer(ctx context.Context) error {
	id, err := c.readID("Customer id: ")
	if err != nil {
		return err
	}
	name, err := c.readLine("Name: ")
	if err != nil {
		return err
	}
	contact, err := c.readLine("Contact: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(id, name, contact)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.CreateCustomer.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintf(c.out, "Welcome, %s.\n", name)
	return nil
}

func (c *CLI) addToCart(ctx context.Context) error {
	customerID, err := c.readID("Customer id: ")
	if err != nil {
		return err
	}
	restaurantID, err := c.readID("Restaurant id: ")
	if err != nil {
		return err
	}
	foodItemID, err := c.readID("Food item id: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Quantity: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddToCartCommand(customerID, restaurantID, foodItemID, quantity)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.AddToCart.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintln(c.out, "Added to cart.")
	return nil
}

func (c *CLI) viewCart(ctx context.Context) error {
	customerID, err := c.readID("Customer id: ")
	if err != nil {
		return err
	}

	query, err := queries.NewViewCartQuery(customerID)
	if err != nil {
		c.renderError(err)
		return nil
	}
	cart, err := c.handlers.ViewCart.Handle(ctx, query)
	if err != nil {
		c.renderError(err)
		return nil
	}

	c.renderCart(cart)
	return nil
}

func (c *CLI) removeFromCart(ctx context.Context) error {
	customerID, err := c.readID("Customer id: ")
	if err != nil {
		return err
	}
	foodItemID, err := c.readID("Food item id: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveFromCartCommand(customerID, foodItemID)
	if err != nil {
		c.renderError(err)
		return nil
	}
	if err := c.handlers.RemoveFromCart.Handle(ctx, cmd); err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintln(c.out, "Removed from cart.")
	return nil
}

func (c *CLI) placeOrder(ctx context.Context) error {
	customerID, err := c.readID("Customer id: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID)
	if err != nil {
		c.renderError(err)
		return nil
	}
	orderID, err := c.handlers.PlaceOrder.Handle(ctx, cmd)
	if err != nil {
		c.renderError(err)
		return nil
	}

	fmt.Fprintf(c.out, "Order %s placed.\n", orderID)
	return nil
}

func (c *CLI) listMyOrders(ctx context.Context) error {
	customerID, err := c.readID("Customer id: ")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersForCustomerQuery(customerID)
	if err != nil {
		c.renderError(err)
		return nil
	}
	orders, err := c.handlers.ListOrdersForCustomer.Handle(ctx, query)
	if err != nil {
		c.renderError(err)
		return nil
	}

	c.renderOrders(orders)
	return nil
}
