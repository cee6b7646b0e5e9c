package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerDirectory exposes the customer existence checks the core consumes.
// Customer management itself lives outside the core.
type CustomerDirectory interface {
	// Exists reports whether a customer with the given ID exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// IsActive reports whether the customer exists and is active.
	// Orders may only be created for active customers.
	IsActive(ctx context.Context, id kernel.UUID) (bool, error)
}

// PartCatalog exposes the catalog part existence check. Line items may
// optionally reference a catalog part; the reference must resolve at order
// time. The part's number and description are denormalized onto the line
// item, so later catalog edits never touch existing orders.
type PartCatalog interface {
	// Exists reports whether a catalog part with the given ID exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
