// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers open a unit of work so paginated reads observe committed,
// repository-ordered state, and never commit: the deferred rollback closes
// the read transaction.
package queries

import (
	"context"

	"freight/internal/core/ports"
)

// Narrow unit-of-work views for query handlers. Reads go through the same
// transaction machinery as writes but only ever roll back.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TruckReadUoW provides transactional access to the truck repository.
	TruckReadUoW interface {
		TxManager
		TruckRepository() ports.TruckRepository
	}

	// TruckReadUoWFactory creates new truck read unit of work instances.
	TruckReadUoWFactory interface {
		Create() TruckReadUoW
	}

	// PackageReadUoW provides transactional access to the package repository.
	PackageReadUoW interface {
		TxManager
		PackageRepository() ports.PackageRepository
	}

	// PackageReadUoWFactory creates new package read unit of work instances.
	PackageReadUoWFactory interface {
		Create() PackageReadUoW
	}

	// ManagerReadUoW provides transactional access to the manager repository.
	ManagerReadUoW interface {
		TxManager
		ManagerRepository() ports.ManagerRepository
	}

	// ManagerReadUoWFactory creates new manager read unit of work instances.
	ManagerReadUoWFactory interface {
		Create() ManagerReadUoW
	}
)
