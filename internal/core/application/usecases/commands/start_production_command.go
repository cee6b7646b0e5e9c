package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrStartProductionCommandIsNotConstructed = errors.New(
		"StartProductionCommand must be created via NewStartProductionCommand constructor",
	)
)

// StartProductionCommand represents the explicit production-start action on
// one line item. The flag is independent of shipment state and is never
// cleared automatically.
type StartProductionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewStartProductionCommand creates a command to flag a line item as in
// production.
func NewStartProductionCommand(orderID, lineItemID kernel.UUID, actor string) (StartProductionCommand, error) {
	cmd := StartProductionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
		cmd.setActor(actor),
	); err != nil {
		return StartProductionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProductionCommand) Validate() error {
	return c.guard.Validate(ErrStartProductionCommandIsNotConstructed)
}

// OrderID returns the order owning the line item.
func (c StartProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineItemID returns the line item to flag.
func (c StartProductionCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

// Actor returns the identity performing the operation.
func (c StartProductionCommand) Actor() string {
	return c.actor
}

func (c *StartProductionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartProductionCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}
	c.lineItemID = lineItemID
	return nil
}

func (c *StartProductionCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
