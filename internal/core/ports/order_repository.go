// Package ports defines the contracts between the fulfillment core and
// infrastructure: persistence, the audit sink, and the customer/part
// directories. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items and appended shipments.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items as one
	// unit. Returns ConflictError if the (customer, PO number) pair already
	// exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its line
	// items. Returns ConflictError if a PO number change collides with
	// another order of the same customer.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row and its
	// line item rows for the duration of the surrounding transaction.
	// Two concurrent shipments against the same line item serialize here;
	// without the lock both could pass the remaining-quantity check against
	// a stale value.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AddShipment appends one immutable shipment record. Shipments are
	// never updated or deleted.
	AddShipment(ctx context.Context, shipment *order.Shipment) error

	// GetShipments retrieves the shipment ledger of a line item, oldest
	// first.
	GetShipments(ctx context.Context, lineItemID kernel.UUID) ([]*order.Shipment, error)
}
