package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetTruckQueryIsNotConstructed = errors.New(
	"GetTruckQuery must be created via NewGetTruckQuery constructor",
)

// GetTruckQuery retrieves a single truck by its identity.
type GetTruckQuery struct {
	truckID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewGetTruckQuery creates a query for the truck with the given id.
func NewGetTruckQuery(truckID kernel.EntityID) (GetTruckQuery, error) {
	if err := truckID.Validate(); err != nil {
		return GetTruckQuery{}, err
	}

	return GetTruckQuery{truckID: truckID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTruckQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckQueryIsNotConstructed)
}

// TruckID returns the id of the requested truck.
func (q GetTruckQuery) TruckID() kernel.EntityID {
	return q.truckID
}

// TruckResponse represents a truck in the read model, including the package
// ids reconstructed from the stored carrier references.
type TruckResponse struct {
	ID         kernel.EntityID
	TruckType  string
	Length     int
	Axles      int
	Owner      string
	PackageIDs []kernel.EntityID
}
