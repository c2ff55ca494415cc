// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: constructor-guard validation,
// per-order serialization where required, transaction management, and
// persistence; status-changing handlers additionally publish to the
// notification sink after commit, fire-and-forget.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. The narrow variants keep each handler coupled only to the
// repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TailorRepoFactory provides access to the tailor repository within a transaction.
	TailorRepoFactory interface {
		TailorRepository() ports.TailorRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TailorUoW manages transactions for tailor-directory operations.
	TailorUoW interface {
		TxManager
		TailorRepoFactory
	}

	// TailorUoWFactory creates new tailor unit of work instances.
	TailorUoWFactory interface {
		Create() TailorUoW
	}

	// UoW manages transactions needing both the order and tailor
	// repositories, such as assignment.
	UoW interface {
		TxManager
		OrderRepoFactory
		TailorRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
