package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves orders that are pending or in
// production. Shipped and cancelled orders are excluded.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results come back oldest order first so the
// longest-waiting work surfaces at the top of the listing.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.po_number,
			o.due_date,
			o.quoted_ship_date,
			o.status,
			COUNT(li.id) AS line_item_count
		FROM orders o
		LEFT JOIN line_items li ON li.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		GROUP BY o.id, o.customer_id, o.po_number, o.due_date, o.quoted_ship_date, o.status, o.created_at
		ORDER BY o.created_at, o.id
	`, int(order.Shipped), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			poNumber   string
			dueDate    sql.NullTime
			quotedDate sql.NullTime
			status     int
			itemCount  int
		)
		if err = rows.Scan(&id, &customerID, &poNumber, &dueDate, &quotedDate, &status, &itemCount); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:             orderID,
			CustomerID:     orderCustomerID,
			PONumber:       poNumber,
			DueDate:        nullTimePtr(dueDate),
			QuotedShipDate: nullTimePtr(quotedDate),
			Status:         order.Status(status).String(),
			LineItemCount:  itemCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
