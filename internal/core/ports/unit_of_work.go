package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and owns the repositories that write
// through it. Client code must explicitly manage transaction lifecycle:
// Begin exactly once, Commit at most once, with Rollback deferred so the
// default outcome is abort.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	// A unit of work carries at most one transaction; calling Begin on a
	// unit of work that already has one is an error.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to call after
	// Commit or a previous Rollback: a finished transaction makes it a
	// no-op, so a deferred Rollback never double-aborts.
	Rollback(ctx context.Context) error

	// TruckRepository returns a TruckRepository instance bound to the
	// current transaction. Repository will use the transaction started by Begin().
	TruckRepository() TruckRepository

	// PackageRepository returns a PackageRepository instance bound to the
	// current transaction. Repository will use the transaction started by Begin().
	PackageRepository() PackageRepository

	// ManagerRepository returns a ManagerRepository instance bound to the
	// current transaction. Repository will use the transaction started by Begin().
	ManagerRepository() ManagerRepository
}
