package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves a single package by its identity.
type GetPackageQuery struct {
	packageID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for the package with the given id.
func NewGetPackageQuery(packageID kernel.EntityID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, err
	}

	return GetPackageQuery{packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PackageID returns the id of the requested package.
func (q GetPackageQuery) PackageID() kernel.EntityID {
	return q.packageID
}

// PackageResponse represents a package in the read model.
// CarrierID is nil for an unassigned package.
type PackageResponse struct {
	ID           kernel.EntityID
	ShippingType string
	Weight       kernel.Weight
	ShippingDate kernel.ShipDate
	CarrierID    *kernel.EntityID
}
