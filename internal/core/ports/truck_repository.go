// Package ports defines repository and unit-of-work interfaces for the
// freight domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for truck aggregates.
// Provides methods for storing, retrieving, and paging truck entities
// with their derived package assignment sets.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	// A truck without an assigned identity receives a store-generated id,
	// written back to the aggregate before the transaction commits.
	// The id is also observable through IDOfAddedEntity.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck aggregate, including
	// reconciling the carrier reference of every package in (or removed
	// from) the truck's assignment set. The truck must exist in storage.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	// The truck's package assignment set is reconstructed from the stored
	// carrier references. Returns (nil, nil) when no record exists:
	// absence is a value, not an error.
	Get(ctx context.Context, id kernel.EntityID) (*truck.Truck, error)

	// GetList retrieves a page of trucks in stable store order.
	// The boolean result reports whether more pages exist beyond this one.
	GetList(ctx context.Context, limit, offset int) ([]*truck.Truck, bool, error)

	// Remove stages a delete of the truck with the given id, releasing the
	// carrier reference of every package assigned to it. Removing an absent
	// id is a no-op, not an error; callers distinguish the two outcomes
	// through IDOfDeletedEntity.
	Remove(ctx context.Context, id kernel.EntityID) error

	// IDOfAddedEntity reports the identity assigned by the most recent Add,
	// or the zero EntityID when nothing has been added.
	IDOfAddedEntity() kernel.EntityID

	// IDOfDeletedEntity reports the identity of the record deleted by the
	// most recent Remove, or the zero EntityID when the id was absent.
	IDOfDeletedEntity() kernel.EntityID
}
