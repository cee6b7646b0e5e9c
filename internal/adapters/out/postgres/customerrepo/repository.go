package customerrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCustomerDirectory implements CustomerDirectory using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

// NewGormCustomerDirectory creates a new GORM customer directory.
func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// Exists reports whether a customer with the given ID exists.
func (d *GormCustomerDirectory) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := d.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	return count > 0, err
}

// IsActive reports whether the customer exists and is active.
func (d *GormCustomerDirectory) IsActive(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := d.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ? AND active", id.Bytes()).
		Count(&count).Error
	return count > 0, err
}

// GormPartCatalog implements PartCatalog using GORM.
type GormPartCatalog struct {
	db *gorm.DB
}

// NewGormPartCatalog creates a new GORM part catalog.
func NewGormPartCatalog(db *gorm.DB) *GormPartCatalog {
	return &GormPartCatalog{db: db}
}

// Exists reports whether a catalog part with the given ID exists.
func (c *GormPartCatalog) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := c.db.WithContext(ctx).
		Model(&PartDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	return count > 0, err
}
