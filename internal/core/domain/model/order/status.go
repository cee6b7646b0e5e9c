package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose forward transitions are never applied
// directly by callers: Pending, Production, and Shipped are produced only by
// the status recompute over the order's line items. Cancelled is the one
// explicit transition, reachable from any state, and terminal.
//
// State transitions:
//
//	Pending ──> Production ──> Shipped
//	    │            │            │
//	    └────────────┴────────────┴──> Cancelled (explicit action only)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: no line item has shipped anything and
	// none is in production.
	Pending

	// Production indicates work has started: at least one line item is
	// flagged in production or has a non-zero shipped quantity.
	Production

	// Shipped indicates every line item is fully shipped.
	Shipped

	// Cancelled is the terminal status set by an explicit cancel action.
	// The recompute never produces it and never overwrites it.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "pending",
		Production: "production",
		Shipped:    "shipped",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Production: "production",
		Shipped:    "shipped",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Production, Shipped, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Used to ensure Status values from external sources (database, API) are
// valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, e.g. "production".
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Cancel performs the explicit transition to Cancelled.
//
// Cancellation is allowed from Pending, Production, and Shipped. A cancelled
// order cannot be cancelled again; Cancelled is terminal.
//
// Returns:
//   - the Cancelled status on success
//   - error if the order is already cancelled or the status is invalid
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Cancelled {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is already terminal", s.String()),
		)
	}
	return Cancelled, nil
}

// IsCancelled reports whether the status is the terminal Cancelled state.
func (s Status) IsCancelled() bool {
	return s == Cancelled
}
