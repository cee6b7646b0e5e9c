package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update of an order's editable
// fields: PO number, due date, quoted ship date, notes. A nil field leaves
// the current value unchanged. Status is not an editable field; it only
// changes through recompute or cancellation.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	poNumber       *string
	dueDate        *time.Time
	quotedShipDate *time.Time
	notes          *string
	actor          string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's details.
// At least one field must be supplied; an empty PO number is rejected here,
// before any transaction opens.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	poNumber *string,
	dueDate *time.Time,
	quotedShipDate *time.Time,
	notes *string,
	actor string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPONumber(poNumber),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if poNumber == nil && dueDate == nil && quotedShipDate == nil && notes == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("at least one field to update")
	}

	cmd.dueDate = dueDate
	cmd.quotedShipDate = quotedShipDate
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PONumber returns the new PO number, or nil to keep the current one.
func (c UpdateOrderCommand) PONumber() *string {
	return c.poNumber
}

// DueDate returns the new due date, or nil to keep the current one.
func (c UpdateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

// QuotedShipDate returns the new quoted ship date, or nil to keep the
// current one.
func (c UpdateOrderCommand) QuotedShipDate() *time.Time {
	return c.quotedShipDate
}

// Notes returns the new notes, or nil to keep the current ones.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

// Actor returns the identity performing the operation.
func (c UpdateOrderCommand) Actor() string {
	return c.actor
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setPONumber(poNumber *string) error {
	if poNumber != nil && *poNumber == "" {
		return errs.NewValueIsRequiredError("poNumber")
	}
	c.poNumber = poNumber
	return nil
}

func (c *UpdateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
