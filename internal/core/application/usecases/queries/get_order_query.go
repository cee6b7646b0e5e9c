// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structures shaped for presentation.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its line items and the full
// shipment history of each line item.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	PONumber       string
	DueDate        *time.Time
	QuotedShipDate *time.Time
	Notes          string
	Status         string
	LineItems      []LineItemResponse
}

// LineItemResponse is the read model of one line item, including its
// derived shipment state, remaining quantity, and shipment history.
type LineItemResponse struct {
	ID                kernel.UUID
	PartID            *kernel.UUID
	PartNumber        string
	Description       string
	Colors            string
	Quantity          kernel.Quantity
	Unit              string
	ShippedQuantity   kernel.Quantity
	RemainingQuantity kernel.Quantity
	InProduction      bool
	DateShipped       *time.Time
	State             string
	Shipments         []ShipmentResponse
}

// ShipmentResponse is the read model of one immutable shipment record.
type ShipmentResponse struct {
	ID             kernel.UUID
	Quantity       kernel.Quantity
	ShipDate       time.Time
	TrackingNumber string
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
}
