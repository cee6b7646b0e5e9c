package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves every order still moving through
// fulfillment, i.e. not yet fully shipped and not cancelled.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	active, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for active orders. This is a
// parameterless query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the active-orders listing.
type GetActiveOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	PONumber       string
	DueDate        *time.Time
	QuotedShipDate *time.Time
	Status         string
	LineItemCount  int
}
