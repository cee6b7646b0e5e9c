package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates to an order's editable
// fields. A PO number change is subject to the same per-customer uniqueness
// rule as creation and surfaces as ConflictError.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order detail updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Unsupplied fields keep their current
// values; the audit entry captures the full before/after order state.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	before := orderSnapshot(aggregate)

	poNumber := aggregate.PONumber()
	if cmd.PONumber() != nil {
		poNumber = *cmd.PONumber()
	}
	dueDate := aggregate.DueDate()
	if cmd.DueDate() != nil {
		dueDate = cmd.DueDate()
	}
	quotedShipDate := aggregate.QuotedShipDate()
	if cmd.QuotedShipDate() != nil {
		quotedShipDate = cmd.QuotedShipDate()
	}
	notes := aggregate.Notes()
	if cmd.Notes() != nil {
		notes = *cmd.Notes()
	}

	if err = aggregate.UpdateDetails(poNumber, dueDate, quotedShipDate, notes); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.AuditRecorder().Record(ctx, ports.AuditEntry{
		Actor:      cmd.Actor(),
		Action:     "order.update",
		EntityType: "order",
		EntityID:   aggregate.ID(),
		Before:     before,
		After:      orderSnapshot(aggregate),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
