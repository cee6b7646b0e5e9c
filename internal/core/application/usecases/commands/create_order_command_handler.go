package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The order row and all line-item rows are created as one atomic unit; if
// any line item fails validation or insertion, nothing persists.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, customers, parts)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	customers  ports.CustomerDirectory
	parts      ports.PartCatalog
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires the unit of work factory for transactional persistence and the
// customer/part directories for existence checks.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	customers ports.CustomerDirectory,
	parts ports.PartCatalog,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
		parts:      parts,
	}
}

// Handle processes the order creation command.
//
// Validation runs before the transaction opens: the customer must exist and
// be active, and every referenced catalog part must exist. The aggregate is
// then built (which validates each line item), persisted, and audited in one
// transaction. A duplicate (customer, PO number) pair surfaces as a
// ConflictError from the repository and creates zero rows.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.customers.Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	active, err := h.customers.IsActive(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errs.NewValueIsInvalidError("customer is not active")
	}

	lineItems := make([]*order.LineItem, 0, len(cmd.LineItems()))
	for _, input := range cmd.LineItems() {
		if input.PartID != nil {
			partExists, partErr := h.parts.Exists(ctx, *input.PartID)
			if partErr != nil {
				return nil, partErr
			}
			if !partExists {
				return nil, errs.NewObjectNotFoundError("part", input.PartID.String())
			}
		}

		item, itemErr := order.NewLineItem(
			kernel.NewUUID(),
			input.PartID,
			input.PartNumber,
			input.Description,
			input.Colors,
			input.Quantity,
			input.Unit,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.PONumber(),
		cmd.DueDate(),
		cmd.QuotedShipDate(),
		cmd.Notes(),
		lineItems,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.AuditRecorder().Record(ctx, ports.AuditEntry{
		Actor:      cmd.Actor(),
		Action:     "order.create",
		EntityType: "order",
		EntityID:   aggregate.ID(),
		Before:     nil,
		After:      orderSnapshot(aggregate),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
