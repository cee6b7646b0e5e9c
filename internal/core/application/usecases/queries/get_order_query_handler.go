package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its line items and shipments
// directly from the database. The derived fields (remaining quantity, item
// state, status name) are computed here rather than stored.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no order with
// the given ID exists. Line items come back in insertion order, shipments
// oldest first.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.readLineItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	for i := range items {
		shipments, shipErr := h.readShipments(ctx, items[i].ID)
		if shipErr != nil {
			return GetOrderQueryResponse{}, shipErr
		}
		items[i].Shipments = shipments
	}

	resp.LineItems = items
	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			po_number,
			due_date,
			quoted_ship_date,
			notes,
			status
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	var (
		id         uuid.UUID
		customerID uuid.UUID
		poNumber   string
		dueDate    sql.NullTime
		quotedDate sql.NullTime
		notes      string
		status     int
	)
	if err := row.Scan(&id, &customerID, &poNumber, &dueDate, &quotedDate, &notes, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	respCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:             respID,
		CustomerID:     respCustomerID,
		PONumber:       poNumber,
		DueDate:        nullTimePtr(dueDate),
		QuotedShipDate: nullTimePtr(quotedDate),
		Notes:          notes,
		Status:         order.Status(status).String(),
	}, nil
}

func (h GetOrderQueryHandler) readLineItems(ctx context.Context, orderID kernel.UUID) ([]LineItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			part_id,
			part_number,
			description,
			colors,
			quantity,
			unit,
			shipped_quantity,
			in_production,
			date_shipped
		FROM line_items
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			partID       uuid.NullUUID
			partNumber   string
			description  string
			colors       string
			quantity     decimal.Decimal
			unit         int
			shipped      decimal.Decimal
			inProduction bool
			dateShipped  sql.NullTime
		)
		if err = rows.Scan(
			&id, &partID, &partNumber, &description, &colors,
			&quantity, &unit, &shipped, &inProduction, &dateShipped,
		); err != nil {
			return nil, err
		}

		item, mapErr := mapLineItem(
			id, partID, partNumber, description, colors,
			quantity, unit, shipped, inProduction, dateShipped)
		if mapErr != nil {
			return nil, mapErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (h GetOrderQueryHandler) readShipments(ctx context.Context, lineItemID kernel.UUID) ([]ShipmentResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			quantity,
			ship_date,
			tracking_number,
			notes,
			created_by,
			created_at
		FROM shipments
		WHERE line_item_id = ?
		ORDER BY created_at, id
	`, lineItemID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			quantity  decimal.Decimal
			shipDate  time.Time
			tracking  string
			notes     string
			createdBy string
			createdAt time.Time
		)
		if err = rows.Scan(&id, &quantity, &shipDate, &tracking, &notes, &createdBy, &createdAt); err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		qty, qtyErr := kernel.NewQuantity(quantity)
		if qtyErr != nil {
			return nil, qtyErr
		}

		shipments = append(shipments, ShipmentResponse{
			ID:             shipmentID,
			Quantity:       qty,
			ShipDate:       shipDate,
			TrackingNumber: tracking,
			Notes:          notes,
			CreatedBy:      createdBy,
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shipments, nil
}

func mapLineItem(
	id uuid.UUID,
	partID uuid.NullUUID,
	partNumber string,
	description string,
	colors string,
	quantity decimal.Decimal,
	unit int,
	shipped decimal.Decimal,
	inProduction bool,
	dateShipped sql.NullTime,
) (LineItemResponse, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LineItemResponse{}, err
	}

	var itemPartID *kernel.UUID
	if partID.Valid {
		mapped, partErr := kernel.UUIDFromBytes(partID.UUID[:])
		if partErr != nil {
			return LineItemResponse{}, partErr
		}
		itemPartID = &mapped
	}

	qty, err := kernel.NewQuantity(quantity)
	if err != nil {
		return LineItemResponse{}, err
	}
	shippedQty, err := kernel.NewQuantity(shipped)
	if err != nil {
		return LineItemResponse{}, err
	}
	remaining, err := qty.Sub(shippedQty)
	if err != nil {
		return LineItemResponse{}, err
	}

	state := order.Unshipped
	switch {
	case !shippedQty.LessThan(qty):
		state = order.FullyShipped
	case shippedQty.IsPositive():
		state = order.PartiallyShipped
	}

	return LineItemResponse{
		ID:                itemID,
		PartID:            itemPartID,
		PartNumber:        partNumber,
		Description:       description,
		Colors:            colors,
		Quantity:          qty,
		Unit:              order.Unit(unit).String(),
		ShippedQuantity:   shippedQty,
		RemainingQuantity: remaining,
		InProduction:      inProduction,
		DateShipped:       nullTimePtr(dateShipped),
		State:             state.String(),
	}, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
