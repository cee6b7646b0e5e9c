package http

import (
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /orders. Dates use YYYY-MM-DD.
type CreateOrderRequest struct {
	CustomerID     string            `json:"customer_id"`
	PONumber       string            `json:"po_number"`
	DueDate        *string           `json:"due_date,omitempty"`
	QuotedShipDate *string           `json:"quoted_ship_date,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	LineItems      []LineItemRequest `json:"line_items"`
}

// LineItemRequest is one requested line item within an order creation.
type LineItemRequest struct {
	PartID      *string `json:"part_id,omitempty"`
	PartNumber  string  `json:"part_number"`
	Description string  `json:"description"`
	Colors      string  `json:"colors,omitempty"`
	Quantity    string  `json:"quantity"`
	Unit        string  `json:"unit"`
}

func (r LineItemRequest) toInput() (commands.LineItemInput, error) {
	var partID *kernel.UUID
	if r.PartID != nil && *r.PartID != "" {
		id, err := kernel.UUIDFromString(*r.PartID)
		if err != nil {
			return commands.LineItemInput{}, err
		}
		partID = &id
	}

	quantity, err := kernel.QuantityFromString(r.Quantity)
	if err != nil {
		return commands.LineItemInput{}, err
	}

	unit, err := order.UnitFromString(r.Unit)
	if err != nil {
		return commands.LineItemInput{}, err
	}

	return commands.LineItemInput{
		PartID:      partID,
		PartNumber:  r.PartNumber,
		Description: r.Description,
		Colors:      r.Colors,
		Quantity:    quantity,
		Unit:        unit,
	}, nil
}

// UpdateOrderRequest is the body of PATCH /orders/:orderID. Absent fields
// stay unchanged.
type UpdateOrderRequest struct {
	PONumber       *string `json:"po_number,omitempty"`
	DueDate        *string `json:"due_date,omitempty"`
	QuotedShipDate *string `json:"quoted_ship_date,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// RecordShipmentRequest is the body of the shipment endpoint. ShipDate
// defaults to today when absent.
type RecordShipmentRequest struct {
	Quantity       string  `json:"quantity"`
	ShipDate       *string `json:"ship_date,omitempty"`
	TrackingNumber string  `json:"tracking_number,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// OrderResponse is the representation of an order returned by mutations.
type OrderResponse struct {
	ID             string             `json:"id"`
	CustomerID     string             `json:"customer_id"`
	PONumber       string             `json:"po_number"`
	DueDate        *string            `json:"due_date,omitempty"`
	QuotedShipDate *string            `json:"quoted_ship_date,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	Status         string             `json:"status"`
	LineItems      []LineItemResponse `json:"line_items"`
}

// LineItemResponse is the representation of a line item with its derived
// ledger fields.
type LineItemResponse struct {
	ID                string  `json:"id"`
	PartID            *string `json:"part_id,omitempty"`
	PartNumber        string  `json:"part_number"`
	Description       string  `json:"description"`
	Colors            string  `json:"colors,omitempty"`
	Quantity          string  `json:"quantity"`
	Unit              string  `json:"unit"`
	ShippedQuantity   string  `json:"shipped_quantity"`
	RemainingQuantity string  `json:"remaining_quantity"`
	InProduction      bool    `json:"in_production"`
	DateShipped       *string `json:"date_shipped,omitempty"`
	State             string  `json:"state"`

	Shipments []ShipmentResponse `json:"shipments,omitempty"`
}

// ShipmentResponse is the representation of one immutable shipment record.
type ShipmentResponse struct {
	ID             string `json:"id"`
	LineItemID     string `json:"line_item_id"`
	Quantity       string `json:"quantity"`
	ShipDate       string `json:"ship_date"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedBy      string `json:"created_by"`
}

// RecordShipmentResponse is the reply of the shipment endpoint: the new
// record plus the line item's updated totals.
type RecordShipmentResponse struct {
	Shipment ShipmentResponse `json:"shipment"`
	LineItem LineItemResponse `json:"line_item"`
}

// ActiveOrderResponse is one row of the active-orders listing.
type ActiveOrderResponse struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	PONumber       string  `json:"po_number"`
	DueDate        *string `json:"due_date,omitempty"`
	QuotedShipDate *string `json:"quoted_ship_date,omitempty"`
	Status         string  `json:"status"`
	LineItemCount  int     `json:"line_item_count"`
}

func orderFromDomain(aggregate *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, lineItemFromDomain(item))
	}

	return OrderResponse{
		ID:             aggregate.ID().String(),
		CustomerID:     aggregate.CustomerID().String(),
		PONumber:       aggregate.PONumber(),
		DueDate:        formatDate(aggregate.DueDate()),
		QuotedShipDate: formatDate(aggregate.QuotedShipDate()),
		Notes:          aggregate.Notes(),
		Status:         aggregate.Status().String(),
		LineItems:      items,
	}
}

func lineItemFromDomain(item *order.LineItem) LineItemResponse {
	var partID *string
	if id := item.PartID(); id != nil {
		s := id.String()
		partID = &s
	}

	return LineItemResponse{
		ID:                item.ID().String(),
		PartID:            partID,
		PartNumber:        item.PartNumber(),
		Description:       item.Description(),
		Colors:            item.Colors(),
		Quantity:          item.Quantity().String(),
		Unit:              item.Unit().String(),
		ShippedQuantity:   item.ShippedQuantity().String(),
		RemainingQuantity: item.RemainingQuantity().String(),
		InProduction:      item.InProduction(),
		DateShipped:       formatDate(item.DateShipped()),
		State:             item.ShipmentState().String(),
	}
}

func shipmentResultFromDomain(result commands.RecordShipmentResult) RecordShipmentResponse {
	return RecordShipmentResponse{
		Shipment: ShipmentResponse{
			ID:             result.Shipment.ID().String(),
			LineItemID:     result.Shipment.LineItemID().String(),
			Quantity:       result.Shipment.Quantity().String(),
			ShipDate:       result.Shipment.ShipDate().Format(dateLayout),
			TrackingNumber: result.Shipment.TrackingNumber(),
			Notes:          result.Shipment.Notes(),
			CreatedBy:      result.Shipment.CreatedBy(),
		},
		LineItem: lineItemFromDomain(result.LineItem),
	}
}

func orderDetailFromQuery(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]LineItemResponse, 0, len(resp.LineItems))
	for _, item := range resp.LineItems {
		var partID *string
		if item.PartID != nil {
			s := item.PartID.String()
			partID = &s
		}

		shipments := make([]ShipmentResponse, 0, len(item.Shipments))
		for _, shipment := range item.Shipments {
			shipments = append(shipments, ShipmentResponse{
				ID:             shipment.ID.String(),
				LineItemID:     item.ID.String(),
				Quantity:       shipment.Quantity.String(),
				ShipDate:       shipment.ShipDate.Format(dateLayout),
				TrackingNumber: shipment.TrackingNumber,
				Notes:          shipment.Notes,
				CreatedBy:      shipment.CreatedBy,
			})
		}

		items = append(items, LineItemResponse{
			ID:                item.ID.String(),
			PartID:            partID,
			PartNumber:        item.PartNumber,
			Description:       item.Description,
			Colors:            item.Colors,
			Quantity:          item.Quantity.String(),
			Unit:              item.Unit,
			ShippedQuantity:   item.ShippedQuantity.String(),
			RemainingQuantity: item.RemainingQuantity.String(),
			InProduction:      item.InProduction,
			DateShipped:       formatDate(item.DateShipped),
			State:             item.State,
			Shipments:         shipments,
		})
	}

	return OrderResponse{
		ID:             resp.ID.String(),
		CustomerID:     resp.CustomerID.String(),
		PONumber:       resp.PONumber,
		DueDate:        formatDate(resp.DueDate),
		QuotedShipDate: formatDate(resp.QuotedShipDate),
		Notes:          resp.Notes,
		Status:         resp.Status,
		LineItems:      items,
	}
}
