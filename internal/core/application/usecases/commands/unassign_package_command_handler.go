package commands

import (
	"context"

	"freight/internal/pkg/errs"
)

// UnassignPackageCommandHandler handles unloading a package from a truck.
type UnassignPackageCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnassignPackageCommandHandler creates a handler for package removal.
// Requires a UoWFactory spanning truck and package repositories.
func NewUnassignPackageCommandHandler(uowFactory UoWFactory) UnassignPackageCommandHandler {
	return UnassignPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package removal command.
// Returns errs.ObjectNotFoundError when the truck does not exist, when the
// package does not exist, or when the package is not on this truck;
// ErrNotTruckOwner when the truck belongs to another manager.
func (h *UnassignPackageCommandHandler) Handle(ctx context.Context, cmd UnassignPackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckEntity, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}
	if truckEntity == nil {
		return errs.NewObjectNotFoundError("truck_id", cmd.TruckID())
	}
	if truckEntity.Owner() != cmd.RequesterAuthID() {
		return ErrNotTruckOwner
	}

	packageRepo := uow.PackageRepository()
	packageEntity, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}
	if packageEntity == nil {
		return errs.NewObjectNotFoundError("package_id", cmd.PackageID())
	}
	if !packageEntity.IsAssigned() || !packageEntity.CarrierID().IsEqual(cmd.TruckID()) {
		return errs.NewObjectNotFoundError("package_id", cmd.PackageID())
	}

	packageEntity.ClearCarrier()
	if err = truckEntity.UnassignPackageID(cmd.PackageID()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, packageEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
