package commands

import (
	"context"
)

// DeletePackageCommandHandler handles package deletion.
type DeletePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewDeletePackageCommandHandler creates a handler for package deletion.
func NewDeletePackageCommandHandler(uowFactory PackageUoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package deletion command.
// Reports whether a record was actually deleted: a missing package is not
// an error, it simply yields false.
func (h *DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	if err := packageRepo.Remove(ctx, cmd.PackageID()); err != nil {
		return false, err
	}
	deleted := !packageRepo.IDOfDeletedEntity().IsZero()

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
