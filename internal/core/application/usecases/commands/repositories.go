// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TruckRepoFactory provides access to truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// PackageRepoFactory provides access to package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// ManagerRepoFactory provides access to manager repository within a transaction.
	ManagerRepoFactory interface {
		ManagerRepository() ports.ManagerRepository
	}

	// TruckUoW manages transactions for truck-only operations.
	// Used when commands only modify truck aggregates.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates new truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// PackageUoW manages transactions for package-only operations.
	// Used when commands only modify package aggregates.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// ManagerUoW manages transactions for manager-only operations.
	ManagerUoW interface {
		TxManager
		ManagerRepoFactory
	}

	// ManagerUoWFactory creates new manager unit of work instances.
	ManagerUoWFactory interface {
		Create() ManagerUoW
	}

	// UoW manages transactions across both truck and package aggregates.
	// Used for commands that coordinate changes between the two, such as
	// carrier assignment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   truckRepo := uow.TruckRepository()
	//   packageRepo := uow.PackageRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TruckRepoFactory
		PackageRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
