package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all of its line items to the database. A
// duplicate (customer, PO number) pair trips the composite unique index and
// comes back as ConflictError with no rows written.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("poNumber", aggregate.PONumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order and its line items to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"po_number":        dto.PONumber,
		"due_date":         dto.DueDate,
		"quoted_ship_date": dto.QuotedShipDate,
		"notes":            dto.Notes,
		"status":           dto.Status,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("poNumber", aggregate.PONumber(), result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, item := range dto.LineItems {
		itemResult := r.db.WithContext(ctx).Model(&LineItemDTO{}).Where("id = ?", item.ID).Updates(map[string]any{
			"part_number":      item.PartNumber,
			"description":      item.Description,
			"colors":           item.Colors,
			"quantity":         item.Quantity,
			"unit":             item.Unit,
			"shipped_quantity": item.ShippedQuantity,
			"in_production":    item.InProduction,
			"date_shipped":     item.DateShipped,
		})
		if itemResult.Error != nil {
			return itemResult.Error
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order aggregate with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order aggregate and locks its row and line item
// rows until the surrounding transaction ends. Concurrent shipments against
// the same order block here instead of racing the ledger check.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	orderQuery := db
	itemQuery := db.Order("created_at, id")
	if forUpdate {
		orderQuery = orderQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		itemQuery = itemQuery.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := orderQuery.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var itemDTOs []LineItemDTO
	if err := itemQuery.Find(&itemDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// AddShipment appends one immutable shipment record.
func (r *GormOrderRepository) AddShipment(ctx context.Context, shipment *order.Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}

	dto := shipmentFromDomain(shipment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetShipments retrieves the shipment ledger of a line item, oldest first.
func (r *GormOrderRepository) GetShipments(ctx context.Context, lineItemID kernel.UUID) ([]*order.Shipment, error) {
	if err := lineItemID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "line_item_id = ?", lineItemID.Bytes()).Error; err != nil {
		return nil, err
	}

	shipments := make([]*order.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		shipment, err := shipmentToDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}

	return shipments, nil
}
