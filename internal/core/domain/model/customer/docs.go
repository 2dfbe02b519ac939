// Package customer contains the Customer aggregate and its Cart. A customer
// owns exactly one cart for their whole lifetime: placing an order empties
// the cart, it never replaces it. Cart lines snapshot the menu entry at add
// time, keyed by the food item id.
package customer
