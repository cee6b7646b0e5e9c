package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// StartProductionCommandHandler flags a line item as in production and
// recomputes the order status in the same transaction. A pending order with
// a newly flagged item becomes a production order.
type StartProductionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartProductionCommandHandler creates a handler for production starts.
func NewStartProductionCommandHandler(uowFactory OrderUoWFactory) StartProductionCommandHandler {
	return StartProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the production-start command. The order is loaded under a
// row lock because the flag change and the status recompute must not race a
// concurrent shipment against the same order.
func (h *StartProductionCommandHandler) Handle(ctx context.Context, cmd StartProductionCommand) (*order.LineItem, error) {
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
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	item, err := aggregate.LineItem(cmd.LineItemID())
	if err != nil {
		return nil, err
	}
	before := lineItemSnapshot(item)

	item, err = aggregate.StartProduction(cmd.LineItemID())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.AuditRecorder().Record(ctx, ports.AuditEntry{
		Actor:      cmd.Actor(),
		Action:     "line_item.start_production",
		EntityType: "line_item",
		EntityID:   item.ID(),
		Before:     before,
		After:      lineItemSnapshot(item),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
