package commands

import (
	"context"

	"freight/internal/pkg/errs"
)

// AssignPackageCommandHandler handles loading a package onto a truck.
// Both aggregates are read inside one transaction so the mutual-reference
// invariant (truck lists the package, package names the truck as carrier)
// is committed atomically or not at all.
type AssignPackageCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignPackageCommandHandler creates a handler for package assignment.
// Requires a UoWFactory spanning truck and package repositories.
func NewAssignPackageCommandHandler(uowFactory UoWFactory) AssignPackageCommandHandler {
	return AssignPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package assignment command.
// Returns errs.ObjectNotFoundError when the truck or package does not
// exist, ErrNotTruckOwner when the truck belongs to another manager, and
// ErrPackageAlreadyAssigned when the package already has a different
// carrier. Re-assigning a package to its current carrier commits without
// changes and succeeds.
func (h *AssignPackageCommandHandler) Handle(ctx context.Context, cmd AssignPackageCommand) error {
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

	if packageEntity.IsAssigned() {
		if packageEntity.CarrierID().IsEqual(cmd.TruckID()) {
			return uow.Commit(ctx)
		}
		return ErrPackageAlreadyAssigned
	}

	if err = packageEntity.AssignCarrier(cmd.TruckID()); err != nil {
		return err
	}
	if err = truckEntity.AssignPackageID(cmd.PackageID()); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, packageEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
