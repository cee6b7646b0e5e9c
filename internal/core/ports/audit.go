package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// AuditEntry is one before/after snapshot of a mutation. Before and After
// are serializable representations of the entity state; either may be nil
// (creation has no before, and a no-op has neither).
type AuditEntry struct {
	Actor      string
	Action     string
	EntityType string
	EntityID   kernel.UUID
	Before     any
	After      any
}

// AuditRecorder is the audit sink capability handed to the core. The core
// fires entries and does not read them back, but the write happens inside
// the same transaction as the mutation it describes: if the sink is
// unreachable, the mutation fails (fail-closed).
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry) error
}
