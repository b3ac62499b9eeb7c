package ports

import (
	"context"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
)

// PackageRepository defines the persistence contract for package aggregates.
// Provides methods for storing, retrieving, and paging package entities
// together with their carrier reference.
type PackageRepository interface {
	// Add persists a new package aggregate to storage.
	// A package without an assigned identity receives a store-generated id,
	// written back to the aggregate before the transaction commits.
	// The id is also observable through IDOfAddedEntity.
	Add(ctx context.Context, aggregate *cargo.Package) error

	// Update persists changes to an existing package aggregate,
	// including its carrier reference. The package must exist in storage.
	Update(ctx context.Context, aggregate *cargo.Package) error

	// Get retrieves a package aggregate by its unique identifier.
	// Returns (nil, nil) when no record exists: absence is a value,
	// not an error.
	Get(ctx context.Context, id kernel.EntityID) (*cargo.Package, error)

	// GetList retrieves a page of packages in stable store order.
	// The boolean result reports whether more pages exist beyond this one.
	GetList(ctx context.Context, limit, offset int) ([]*cargo.Package, bool, error)

	// Remove stages a delete of the package with the given id. Removing an
	// absent id is a no-op, not an error; callers distinguish the two
	// outcomes through IDOfDeletedEntity.
	Remove(ctx context.Context, id kernel.EntityID) error

	// IDOfAddedEntity reports the identity assigned by the most recent Add,
	// or the zero EntityID when nothing has been added.
	IDOfAddedEntity() kernel.EntityID

	// IDOfDeletedEntity reports the identity of the record deleted by the
	// most recent Remove, or the zero EntityID when the id was absent.
	IDOfDeletedEntity() kernel.EntityID
}
