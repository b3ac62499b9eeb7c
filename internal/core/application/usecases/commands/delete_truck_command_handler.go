package commands

import (
	"context"
)

// DeleteTruckCommandHandler handles truck deletion.
// Enforces ownership before staging the delete; the packages assigned to
// the truck are released in the same transaction.
type DeleteTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewDeleteTruckCommandHandler creates a handler for truck deletion.
func NewDeleteTruckCommandHandler(uowFactory TruckUoWFactory) DeleteTruckCommandHandler {
	return DeleteTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck deletion command.
// Reports whether a record was actually deleted: a missing truck is not an
// error, it simply yields false so the caller can distinguish "deleted"
// from "nothing to delete". Ownership is only enforced when the truck
// exists.
func (h *DeleteTruckCommandHandler) Handle(ctx context.Context, cmd DeleteTruckCommand) (bool, error) {
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

	truckRepo := uow.TruckRepository()
	truckEntity, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return false, err
	}
	if truckEntity == nil {
		return false, nil
	}
	if truckEntity.Owner() != cmd.RequesterAuthID() {
		return false, ErrNotTruckOwner
	}

	if err = truckRepo.Remove(ctx, cmd.TruckID()); err != nil {
		return false, err
	}
	deleted := !truckRepo.IDOfDeletedEntity().IsZero()

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
