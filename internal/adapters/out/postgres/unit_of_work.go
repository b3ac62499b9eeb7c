// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction and hands out
// repositories bound to it, so every write within a business operation either
// commits or rolls back as a whole.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.TruckRepository().Add(ctx, truck); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// The deferred Rollback is the default outcome: it aborts the transaction on
// any early return and is a no-op once Commit has finished.
package postgres

import (
	"context"

	"freight/internal/adapters/out/postgres/cargorepo"
	"freight/internal/adapters/out/postgres/managerrepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work so concurrent
// operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a single database transaction across the truck,
// package, and manager repositories. Repositories are created lazily and
// cached for the lifetime of the transaction, so the identities they observe
// (last added, last deleted) survive across accessor calls. A repository
// binds to the connection current at first access: obtain repositories after
// Begin so they participate in the transaction. Commit and Rollback drop the
// cache, so a unit of work reused after a fresh Begin binds its repositories
// to the new transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	truckRepo   *truckrepo.GormTruckRepository
	packageRepo *cargorepo.GormPackageRepository
	managerRepo *managerrepo.GormManagerRepository
}

// Begin starts the unit of work's transaction. A unit of work carries at most
// one transaction: calling Begin while one is open is an error, not a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return gorm.ErrInvalidTransaction
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns an error when no transaction is open or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.resetRepositories()
	return err
}

// Rollback discards all changes made within the current transaction.
// Calling Rollback when no transaction is open is a no-op, so a deferred
// Rollback after a successful Commit never double-aborts.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.resetRepositories()
	return err
}

// TruckRepository provides access to truck persistence operations within the
// unit of work. Operations execute within the current transaction if one is
// active, otherwise on the main connection.
func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	if uow.truckRepo == nil {
		uow.truckRepo = truckrepo.NewGormTruckRepository(uow.conn())
	}
	return uow.truckRepo
}

// PackageRepository provides access to package persistence operations within
// the unit of work.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	if uow.packageRepo == nil {
		uow.packageRepo = cargorepo.NewGormPackageRepository(uow.conn())
	}
	return uow.packageRepo
}

// ManagerRepository provides access to manager persistence operations within
// the unit of work.
func (uow *GormUnitOfWork) ManagerRepository() ports.ManagerRepository {
	if uow.managerRepo == nil {
		uow.managerRepo = managerrepo.NewGormManagerRepository(uow.conn())
	}
	return uow.managerRepo
}

// resetRepositories drops the cached repositories when a transaction
// finishes, so repositories obtained after a later Begin bind to the new
// transaction instead of the finished one.
func (uow *GormUnitOfWork) resetRepositories() {
	uow.truckRepo = nil
	uow.packageRepo = nil
	uow.managerRepo = nil
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
