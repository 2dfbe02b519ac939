// Package order contains the Order aggregate: an immutable snapshot of a
// customer's cart taken at placement time, plus the two fields that stay
// mutable afterwards: status and the assigned delivery person.
package order
