// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation before
// any transaction opens, then transaction management and persistence with
// the audit write inside the same transaction.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across every multi-step mutation.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AuditRecorderFactory provides access to the audit sink within a
	// transaction. The sink write commits or rolls back together with the
	// mutation it describes.
	AuditRecorderFactory interface {
		AuditRecorder() ports.AuditRecorder
	}

	// OrderUoW manages transactions for order mutations, which always carry
	// their audit entry in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditRecorderFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
