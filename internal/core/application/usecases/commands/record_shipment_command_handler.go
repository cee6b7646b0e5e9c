package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RecordShipmentResult is what a successful shipment recording returns: the
// immutable shipment record plus the line item's updated ledger totals.
type RecordShipmentResult struct {
	Shipment          *order.Shipment
	LineItem          *order.LineItem
	ShippedQuantity   kernel.Quantity
	RemainingQuantity kernel.Quantity
}

// RecordShipmentCommandHandler records a shipment against a line item. The
// whole operation is transactional: the shipment record, the line item's
// shipped total, the derived order status and the audit entry all commit
// together or not at all.
type RecordShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordShipmentCommandHandler creates a handler for shipment recording.
func NewRecordShipmentCommandHandler(uowFactory OrderUoWFactory) RecordShipmentCommandHandler {
	return RecordShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command. The order row is locked for the
// duration of the transaction so two concurrent shipments against the same
// line item serialize and the second one sees the first one's ledger total.
func (h *RecordShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd RecordShipmentCommand,
) (RecordShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordShipmentResult{}, err
	}

	shipDate := time.Now().UTC().Truncate(24 * time.Hour)
	if cmd.ShipDate() != nil {
		shipDate = *cmd.ShipDate()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return RecordShipmentResult{}, err
	}

	if aggregate.Status().IsCancelled() {
		return RecordShipmentResult{}, errs.NewValueIsInvalidError("order is cancelled")
	}

	item, err := aggregate.LineItem(cmd.LineItemID())
	if err != nil {
		return RecordShipmentResult{}, err
	}
	before := lineItemSnapshot(item)

	shipment, err := aggregate.ShipLineItem(
		cmd.LineItemID(),
		cmd.Quantity(),
		shipDate,
		cmd.TrackingNumber(),
		cmd.Notes(),
		cmd.Actor(),
	)
	if err != nil {
		return RecordShipmentResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return RecordShipmentResult{}, err
	}

	if err = orderRepo.AddShipment(ctx, shipment); err != nil {
		return RecordShipmentResult{}, err
	}

	if err = uow.AuditRecorder().Record(ctx, ports.AuditEntry{
		Actor:      cmd.Actor(),
		Action:     "line_item.ship",
		EntityType: "line_item",
		EntityID:   item.ID(),
		Before:     before,
		After:      lineItemSnapshot(item),
	}); err != nil {
		return RecordShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordShipmentResult{}, err
	}

	return RecordShipmentResult{
		Shipment:          shipment,
		LineItem:          item,
		ShippedQuantity:   item.ShippedQuantity(),
		RemainingQuantity: item.RemainingQuantity(),
	}, nil
}
