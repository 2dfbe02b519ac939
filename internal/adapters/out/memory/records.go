package memory

import (
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/person"
	"foodorder/internal/core/domain/model/restaurant"
)

// Records are the registry's storage representation: plain value types
// detached from the domain aggregates. Storing records instead of aggregate
// pointers is what makes reads snapshots; a caller mutating an aggregate it
// got from the registry never reaches the stored state.

type foodItemRecord struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

type restaurantRecord struct {
	ID   int
	Name string
	Menu []foodItemRecord
}

type lineRecord struct {
	FoodItemID int
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

type customerRecord struct {
	ID      int
	Name    string
	Contact string
	Cart    []lineRecord
}

type orderRecord struct {
	ID               int
	CustomerID       int
	Lines            []lineRecord
	Status           string
	DeliveryPersonID *int
}

type deliveryPersonRecord struct {
	ID      int
	Name    string
	Contact string
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) restaurantRecord {
	menu := make([]foodItemRecord, 0, len(aggregate.Menu()))
	for _, item := range aggregate.Menu() {
		menu = append(menu, foodItemRecord{
			ID:    item.ID().Int(),
			Name:  item.Name(),
			Price: item.Price().Amount(),
		})
	}

	return restaurantRecord{
		ID:   aggregate.ID().Int(),
		Name: aggregate.Name(),
		Menu: menu,
	}
}

func restaurantToDomain(record restaurantRecord) (*restaurant.Restaurant, error) {
	id, err := kernel.NewID(record.ID)
	if err != nil {
		return nil, err
	}

	menu := make([]*restaurant.FoodItem, 0, len(record.Menu))
	for _, itemRecord := range record.Menu {
		itemID, idErr := kernel.NewID(itemRecord.ID)
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(itemRecord.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := restaurant.NewFoodItem(itemID, itemRecord.Name, price)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}

	return restaurant.RestoreRestaurant(id, record.Name, menu)
}

func customerFromDomain(aggregate *customer.Customer) customerRecord {
	cart := make([]lineRecord, 0, len(aggregate.Cart().Lines()))
	for _, line := range aggregate.Cart().Lines() {
		cart = append(cart, lineRecord{
			FoodItemID: line.FoodItemID().Int(),
			Name:       line.Name(),
			Price:      line.Price().Amount(),
			Quantity:   line.Quantity(),
		})
	}

	return customerRecord{
		ID:      aggregate.ID().Int(),
		Name:    aggregate.Name(),
		Contact: aggregate.Contact(),
		Cart:    cart,
	}
}

func customerToDomain(record customerRecord) (*customer.Customer, error) {
	id, err := kernel.NewID(record.ID)
	if err != nil {
		return nil, err
	}

	p, err := person.NewPerson(id, record.Name, record.Contact)
	if err != nil {
		return nil, err
	}

	lines := make([]customer.Line, 0, len(record.Cart))
	for _, line := range record.Cart {
		foodItemID, idErr := kernel.NewID(line.FoodItemID)
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(line.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		cartLine, lineErr := customer.NewLine(foodItemID, line.Name, price, line.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, cartLine)
	}

	cart, err := customer.RestoreCart(lines)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(p, cart)
}

func orderFromDomain(aggregate *order.Order) orderRecord {
	lines := make([]lineRecord, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, lineRecord{
			FoodItemID: line.FoodItemID().Int(),
			Name:       line.Name(),
			Price:      line.Price().Amount(),
			Quantity:   line.Quantity(),
		})
	}

	var deliveryPersonID *int
	if assigned := aggregate.DeliveryPersonID(); assigned != nil {
		value := assigned.Int()
		deliveryPersonID = &value
	}

	return orderRecord{
		ID:               aggregate.ID().Int(),
		CustomerID:       aggregate.CustomerID().Int(),
		Lines:            lines,
		Status:           aggregate.Status().String(),
		DeliveryPersonID: deliveryPersonID,
	}
}

func orderToDomain(record orderRecord) (*order.Order, error) {
	id, err := kernel.NewID(record.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewID(record.CustomerID)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(record.Lines))
	for _, line := range record.Lines {
		foodItemID, idErr := kernel.NewID(line.FoodItemID)
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(line.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		orderLine, lineErr := order.NewLine(foodItemID, line.Name, price, line.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, orderLine)
	}

	status, err := order.StatusFromString(record.Status)
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.ID
	if record.DeliveryPersonID != nil {
		assigned, idErr := kernel.NewID(*record.DeliveryPersonID)
		if idErr != nil {
			return nil, idErr
		}
		deliveryPersonID = &assigned
	}

	return order.RestoreOrder(id, customerID, lines, status, deliveryPersonID)
}

func deliveryPersonFromDomain(aggregate *delivery.Person) deliveryPersonRecord {
	return deliveryPersonRecord{
		ID:      aggregate.ID().Int(),
		Name:    aggregate.Name(),
		Contact: aggregate.Contact(),
	}
}

func deliveryPersonToDomain(record deliveryPersonRecord) (*delivery.Person, error) {
	id, err := kernel.NewID(record.ID)
	if err != nil {
		return nil, err
	}

	p, err := person.NewPerson(id, record.Name, record.Contact)
	if err != nil {
		return nil, err
	}

	return delivery.NewPerson(p)
}
