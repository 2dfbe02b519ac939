package cmd

import (
	"io"
	"log/slog"

	"foodorder/internal/adapters/in/cli"
	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	registry   *memory.Registry
	uowFactory memory.UnitOfWorkFactory
}

func NewCompositionRoot(_ Config) CompositionRoot {
	registry := memory.NewRegistry()
	return CompositionRoot{
		registry:   registry,
		uowFactory: *memory.NewUnitOfWorkFactory(registry),
	}
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateAddFoodItemCommandHandler() commands.AddFoodItemCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddFoodItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveFoodItemCommandHandler() commands.RemoveFoodItemCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveFoodItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryPersonCommandHandler() commands.CreateDeliveryPersonCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveFromCartCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDeliveryPersonCommandHandler() commands.AssignDeliveryPersonCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateViewCartQueryHandler() queries.ViewCartQueryHandler {
	return queries.NewViewCartQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateListOrdersForCustomerQueryHandler() queries.ListOrdersForCustomerQueryHandler {
	return queries.NewListOrdersForCustomerQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateListDeliveryPersonsQueryHandler() queries.ListDeliveryPersonsQueryHandler {
	return queries.NewListDeliveryPersonsQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetDeliveryPersonQueryHandler() queries.GetDeliveryPersonQueryHandler {
	return queries.NewGetDeliveryPersonQueryHandler(c.registry)
}

// CreateCLI assembles the interactive menu over all handlers.
func (c *CompositionRoot) CreateCLI(in io.Reader, out io.Writer, logger *slog.Logger, currency string) *cli.CLI {
	handlers := cli.Handlers{
		CreateRestaurant:     c.CreateCreateRestaurantCommandHandler(),
		AddFoodItem:          c.CreateAddFoodItemCommandHandler(),
		RemoveFoodItem:       c.CreateRemoveFoodItemCommandHandler(),
		CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
		CreateDeliveryPerson: c.CreateCreateDeliveryPersonCommandHandler(),
		AddToCart:            c.CreateAddToCartCommandHandler(),
		RemoveFromCart:       c.CreateRemoveFromCartCommandHandler(),
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		AssignDeliveryPerson: c.CreateAssignDeliveryPersonCommandHandler(),
		SetOrderStatus:       c.CreateSetOrderStatusCommandHandler(),

		ListRestaurants:       c.CreateListRestaurantsQueryHandler(),
		ViewCart:              c.CreateViewCartQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		ListOrdersForCustomer: c.CreateListOrdersForCustomerQueryHandler(),
		ListDeliveryPersons:   c.CreateListDeliveryPersonsQueryHandler(),
		GetDeliveryPerson:     c.CreateGetDeliveryPersonQueryHandler(),
	}

	return cli.New(in, out, handlers, logger, currency)
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
