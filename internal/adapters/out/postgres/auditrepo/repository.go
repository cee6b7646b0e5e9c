package auditrepo

import (
	"context"
	"encoding/json"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAuditRecorder implements AuditRecorder using GORM. Bound to a
// transaction by the unit of work, so a failed audit write fails the
// surrounding mutation.
type GormAuditRecorder struct {
	db *gorm.DB
}

// NewGormAuditRecorder creates a new GORM audit recorder.
func NewGormAuditRecorder(db *gorm.DB) *GormAuditRecorder {
	return &GormAuditRecorder{db: db}
}

// Record appends one audit entry. Before and After snapshots are serialized
// to JSON; a nil snapshot stays null in the row.
func (r *GormAuditRecorder) Record(ctx context.Context, entry ports.AuditEntry) error {
	if entry.Action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	if err := entry.EntityID.Validate(); err != nil {
		return err
	}

	before, err := marshalSnapshot(entry.Before)
	if err != nil {
		return err
	}
	after, err := marshalSnapshot(entry.After)
	if err != nil {
		return err
	}

	dto := AuditEntryDTO{
		ID:         uuid.New(),
		Actor:      entry.Actor,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID.Bytes(),
		Before:     before,
		After:      after,
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

func marshalSnapshot(snapshot any) ([]byte, error) {
	if snapshot == nil {
		return nil, nil
	}
	return json.Marshal(snapshot)
}
