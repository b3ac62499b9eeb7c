package queries

import (
	"context"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/pkg/errs"
)

// GetPackageQueryHandler retrieves a single package through the unit of work.
type GetPackageQueryHandler struct {
	uowFactory PackageReadUoWFactory
}

// NewGetPackageQueryHandler creates a handler for single-package queries.
func NewGetPackageQueryHandler(uowFactory PackageReadUoWFactory) GetPackageQueryHandler {
	return GetPackageQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the package does not exist.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return PackageResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PackageResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageEntity, err := uow.PackageRepository().Get(ctx, query.PackageID())
	if err != nil {
		return PackageResponse{}, err
	}
	if packageEntity == nil {
		return PackageResponse{}, errs.NewObjectNotFoundError("package_id", query.PackageID())
	}

	return packageResponseFrom(packageEntity), nil
}

func packageResponseFrom(p *cargo.Package) PackageResponse {
	return PackageResponse{
		ID:           p.ID(),
		ShippingType: p.ShippingType(),
		Weight:       p.Weight(),
		ShippingDate: p.ShippingDate(),
		CarrierID:    p.CarrierID(),
	}
}
