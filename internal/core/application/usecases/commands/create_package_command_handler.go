package commands

import (
	"context"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
)

// CreatePackageCommandHandler handles the business logic for package
// registration. Creates and persists new package entities without a
// carrier and reports the store-assigned identity.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package registration.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package creation command.
// Persists the new package within a transaction and returns the identity
// the store assigned to it.
func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (kernel.EntityID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.EntityID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	packageEntity, err := cargo.NewPackage(cmd.ShippingType(), cmd.Weight(), cmd.ShippingDate())
	if err != nil {
		return kernel.EntityID{}, err
	}

	if err = packageRepo.Add(ctx, packageEntity); err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	return packageEntity.ID(), nil
}
