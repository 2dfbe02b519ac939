// Package restaurant contains the Restaurant aggregate and its menu of food
// items. A restaurant owns its menu: food items are created, renamed,
// repriced, and removed only through the aggregate, and the menu keeps
// insertion order so listings are deterministic.
package restaurant
