// Package customerrepo persists the customer directory and the part catalog.
// Both are lookup tables from the fulfillment core's point of view: the core
// only asks existence questions and denormalizes part data onto line items
// at order time.
package customerrepo

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customers. Inactive
// customers stay in the table; new orders just cannot reference them.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Active    bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// PartDTO represents the database structure for catalog parts. The unique
// index on part_number rejects duplicate part numbers in the catalog.
type PartDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartNumber  string    `gorm:"uniqueIndex"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for part entities.
func (PartDTO) TableName() string {
	return "parts"
}
