package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler performs the explicit cancellation transition.
// Cancelled is terminal: the status recompute never produces it and never
// overwrites it, and cancelling twice is rejected.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. The status change and its audit entry
// commit together or not at all.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := orderSnapshot(aggregate)

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.AuditRecorder().Record(ctx, ports.AuditEntry{
		Actor:      cmd.Actor(),
		Action:     "order.cancel",
		EntityType: "order",
		EntityID:   aggregate.ID(),
		Before:     before,
		After:      orderSnapshot(aggregate),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
