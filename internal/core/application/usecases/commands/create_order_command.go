package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// LineItemInput describes one line item of an order being created. The
// fields are validated in depth by the order domain when the aggregate is
// built; the command only checks the list is present.
type LineItemInput struct {
	PartID      *kernel.UUID
	PartNumber  string
	Description string
	Colors      string
	Quantity    kernel.Quantity
	Unit        order.Unit
}

// CreateOrderCommand represents a request to create an order together with
// all of its line items, as one atomic unit.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "PO-1001", nil, nil, "",
//	    []LineItemInput{{PartNumber: "PN-100", Description: "hose", Quantity: qty, Unit: order.Pieces}},
//	    "jdoe")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     kernel.UUID
	poNumber       string
	dueDate        *time.Time
	quotedShipDate *time.Time
	notes          string
	lineItems      []LineItemInput
	actor          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer ID is valid, the PO number and actor are
// present, and at least one line item is supplied.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	poNumber string,
	dueDate *time.Time,
	quotedShipDate *time.Time,
	notes string,
	lineItems []LineItemInput,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPONumber(poNumber),
		cmd.setLineItems(lineItems),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.dueDate = dueDate
	cmd.quotedShipDate = quotedShipDate
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PONumber returns the customer's purchase-order number.
func (c CreateOrderCommand) PONumber() string {
	return c.poNumber
}

// DueDate returns the optional due date.
func (c CreateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

// QuotedShipDate returns the optional quoted ship date.
func (c CreateOrderCommand) QuotedShipDate() *time.Time {
	return c.quotedShipDate
}

// Notes returns the optional remarks.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// LineItems returns the requested line items.
func (c CreateOrderCommand) LineItems() []LineItemInput {
	return c.lineItems
}

// Actor returns the identity performing the operation.
func (c CreateOrderCommand) Actor() string {
	return c.actor
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPONumber(poNumber string) error {
	if poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	c.poNumber = poNumber
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []LineItemInput) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	c.lineItems = lineItems
	return nil
}

func (c *CreateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
