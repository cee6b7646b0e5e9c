// Package kernel contains the shared value objects of the fulfillment domain.
//
// The kernel holds types that every aggregate depends on but that belong to
// no single aggregate: entity identifiers (UUID) and exact decimal quantities
// (Quantity). Both are immutable value objects constructed through factory
// functions that enforce their invariants, so a value that exists is a value
// that is valid.
package kernel
