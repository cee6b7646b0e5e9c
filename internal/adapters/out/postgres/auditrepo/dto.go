// Package auditrepo persists audit entries. The audit table is an
// append-only log; rows are written inside the same transaction as the
// mutation they describe and are never updated or deleted.
package auditrepo

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntryDTO represents the database structure for one audit entry.
// Before and After hold JSON snapshots of the entity state around the
// mutation; Before is null for creations.
type AuditEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Actor      string
	Action     string `gorm:"index"`
	EntityType string
	EntityID   uuid.UUID `gorm:"type:uuid;index"`
	Before     []byte    `gorm:"type:jsonb"`
	After      []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}
