package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordShipmentCommandIsNotConstructed = errors.New(
		"RecordShipmentCommand must be created via NewRecordShipmentCommand constructor",
	)
)

// RecordShipmentCommand represents a request to ship a quantity against one
// line item of one order. The ship date defaults to the current date when
// omitted; tracking number and notes are optional.
//
// Example:
//
//	cmd, err := NewRecordShipmentCommand(orderID, lineItemID, qty, nil, "1Z999", "", "jdoe")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type RecordShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	lineItemID     kernel.UUID
	quantity       kernel.Quantity
	shipDate       *time.Time
	trackingNumber string
	notes          string
	actor          string

	guard guard.ConstructorGuard
}

// NewRecordShipmentCommand creates a command to record a shipment.
// The quantity must be positive; the over-shipment check against the
// remaining quantity happens later, under the row lock.
func NewRecordShipmentCommand(
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	quantity kernel.Quantity,
	shipDate *time.Time,
	trackingNumber string,
	notes string,
	actor string,
) (RecordShipmentCommand, error) {
	cmd := RecordShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return RecordShipmentCommand{}, err
	}

	cmd.shipDate = shipDate
	cmd.trackingNumber = trackingNumber
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentCommandIsNotConstructed)
}

// OrderID returns the order addressed by the request.
func (c RecordShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItemID returns the line item shipped against.
func (c RecordShipmentCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// Quantity returns the quantity to ship.
func (c RecordShipmentCommand) Quantity() kernel.Quantity {
	return c.quantity
}

// ShipDate returns the requested ship date, or nil to default to today.
func (c RecordShipmentCommand) ShipDate() *time.Time {
	return c.shipDate
}

// TrackingNumber returns the optional carrier tracking reference.
func (c RecordShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Notes returns the optional remarks.
func (c RecordShipmentCommand) Notes() string {
	return c.notes
}

// Actor returns the identity performing the operation.
func (c RecordShipmentCommand) Actor() string {
	return c.actor
}

func (c *RecordShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordShipmentCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}
	c.lineItemID = lineItemID
	return nil
}

func (c *RecordShipmentCommand) setQuantity(quantity kernel.Quantity) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidError("shipment quantity must be greater than 0")
	}
	c.quantity = quantity
	return nil
}

func (c *RecordShipmentCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
