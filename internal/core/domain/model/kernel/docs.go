// Package kernel contains the shared value objects of the domain model:
// entity identifiers and money amounts. Both are immutable, carry their own
// validation, and have invalid zero values so that improperly constructed
// instances are caught by Validate.
package kernel
