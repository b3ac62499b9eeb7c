package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manager"
)

// ManagerRepository defines the persistence contract for truck manager
// aggregates. A manager's truck set is never stored directly: it is
// reconstructed from the owner column of the trucks themselves.
type ManagerRepository interface {
	// Add persists a new manager aggregate to storage.
	// A manager without an assigned identity receives a store-generated id,
	// written back to the aggregate before the transaction commits.
	// Add never deduplicates by auth id; idempotence against repeated
	// logins is the caller's responsibility via GetByAuthID.
	Add(ctx context.Context, aggregate *manager.Manager) error

	// Get retrieves a manager aggregate by its unique identifier.
	// Returns (nil, nil) when no record exists: absence is a value,
	// not an error.
	Get(ctx context.Context, id kernel.EntityID) (*manager.Manager, error)

	// GetByAuthID retrieves the manager registered for an external auth
	// subject id. When several records carry the same auth id the one with
	// the lowest identity wins. Returns (nil, nil) when no record exists.
	GetByAuthID(ctx context.Context, authID string) (*manager.Manager, error)

	// GetList retrieves a page of managers in stable store order.
	// The boolean result reports whether more pages exist beyond this one.
	GetList(ctx context.Context, limit, offset int) ([]*manager.Manager, bool, error)

	// Remove stages a delete of the manager with the given id. Removing an
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
