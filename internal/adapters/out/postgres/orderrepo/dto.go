// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations: the order row, its line item rows, and the
// append-only shipment rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite unique index on (customer_id, po_number) is what rejects a
// duplicate PO number for the same customer at the storage level.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_orders_customer_po"`
	PONumber       string     `gorm:"uniqueIndex:idx_orders_customer_po"`
	DueDate        *time.Time
	QuotedShipDate *time.Time
	Notes          string
	Status         int `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents the database structure for persisting line items.
// Quantities are exact decimals with two fractional digits; the shipped
// total is the ledger the non-oversell check runs against.
type LineItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;index"`
	PartID          *uuid.UUID      `gorm:"type:uuid;index"`
	PartNumber      string
	Description     string
	Colors          string
	Quantity        decimal.Decimal `gorm:"type:decimal(12,2)"`
	Unit            int
	ShippedQuantity decimal.Decimal `gorm:"type:decimal(12,2)"`
	InProduction    bool
	DateShipped     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// ShipmentDTO represents the database structure for the append-only shipment
// records. Rows are only ever inserted.
type ShipmentDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LineItemID     uuid.UUID       `gorm:"type:uuid;index"`
	Quantity       decimal.Decimal `gorm:"type:decimal(12,2)"`
	ShipDate       time.Time
	TrackingNumber string
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts an order domain aggregate to its database
// representation, line items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, lineItemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		PONumber:       aggregate.PONumber(),
		DueDate:        aggregate.DueDate(),
		QuotedShipDate: aggregate.QuotedShipDate(),
		Notes:          aggregate.Notes(),
		Status:         int(aggregate.Status()),
		LineItems:      items,
	}
}

func lineItemFromDomain(orderID kernel.UUID, item *order.LineItem) LineItemDTO {
	var partID *uuid.UUID
	if id := item.PartID(); id != nil {
		raw := id.Bytes()
		partID = &raw
	}

	return LineItemDTO{
		ID:              item.ID().Bytes(),
		OrderID:         orderID.Bytes(),
		PartID:          partID,
		PartNumber:      item.PartNumber(),
		Description:     item.Description(),
		Colors:          item.Colors(),
		Quantity:        item.Quantity().Decimal(),
		Unit:            int(item.Unit()),
		ShippedQuantity: item.ShippedQuantity().Decimal(),
		InProduction:    item.InProduction(),
		DateShipped:     item.DateShipped(),
	}
}

func shipmentFromDomain(shipment *order.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             shipment.ID().Bytes(),
		LineItemID:     shipment.LineItemID().Bytes(),
		Quantity:       shipment.Quantity().Decimal(),
		ShipDate:       shipment.ShipDate(),
		TrackingNumber: shipment.TrackingNumber(),
		Notes:          shipment.Notes(),
		CreatedBy:      shipment.CreatedBy(),
		CreatedAt:      shipment.CreatedAt(),
	}
}

// toDomain converts database DTOs back into an order aggregate, restoring
// each line item's ledger state along the way.
func toDomain(dto OrderDTO, itemDTOs []LineItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.PONumber,
		dto.DueDate,
		dto.QuotedShipDate,
		dto.Notes,
		order.Status(dto.Status),
		items,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var partID *kernel.UUID
	if dto.PartID != nil {
		pID, partErr := kernel.UUIDFromBytes((*dto.PartID)[:])
		if partErr != nil {
			return nil, partErr
		}
		partID = &pID
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}
	shipped, err := kernel.NewQuantity(dto.ShippedQuantity)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(
		id,
		partID,
		dto.PartNumber,
		dto.Description,
		dto.Colors,
		quantity,
		order.Unit(dto.Unit),
		shipped,
		dto.InProduction,
		dto.DateShipped,
	)
}

func shipmentToDomain(dto ShipmentDTO) (*order.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	lineItemID, err := kernel.UUIDFromBytes(dto.LineItemID[:])
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return order.RestoreShipment(
		id,
		lineItemID,
		quantity,
		dto.ShipDate,
		dto.TrackingNumber,
		dto.Notes,
		dto.CreatedBy,
		dto.CreatedAt,
	)
}
