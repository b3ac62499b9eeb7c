package commands

import (
	"context"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/pkg/errs"
)

// EditPackageCommandHandler handles partial updates of package aggregates.
type EditPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewEditPackageCommandHandler creates a handler for package edits.
func NewEditPackageCommandHandler(uowFactory PackageUoWFactory) EditPackageCommandHandler {
	return EditPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package edit command and returns the updated package.
// Returns errs.ObjectNotFoundError when the package does not exist.
func (h *EditPackageCommandHandler) Handle(ctx context.Context, cmd EditPackageCommand) (*cargo.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	packageEntity, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return nil, err
	}
	if packageEntity == nil {
		return nil, errs.NewObjectNotFoundError("package_id", cmd.PackageID())
	}

	if cmd.ShippingType().IsSet() {
		if err = packageEntity.ChangeShippingType(cmd.ShippingType().Value()); err != nil {
			return nil, err
		}
	}
	if cmd.Weight().IsSet() {
		if err = packageEntity.ChangeWeight(cmd.Weight().Value()); err != nil {
			return nil, err
		}
	}
	if cmd.ShippingDate().IsSet() {
		if err = packageEntity.ChangeShippingDate(cmd.ShippingDate().Value()); err != nil {
			return nil, err
		}
	}
	if cmd.ClearCarrier() {
		packageEntity.ClearCarrier()
	}

	if err = packageRepo.Update(ctx, packageEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return packageEntity, nil
}
