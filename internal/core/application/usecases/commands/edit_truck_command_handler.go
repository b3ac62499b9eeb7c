package commands

import (
	"context"

	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

// EditTruckCommandHandler handles partial updates of truck aggregates.
// Loads the truck inside the transaction, enforces ownership, applies only
// the supplied fields and persists the result in a single commit.
type EditTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewEditTruckCommandHandler creates a handler for truck edits.
func NewEditTruckCommandHandler(uowFactory TruckUoWFactory) EditTruckCommandHandler {
	return EditTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck edit command and returns the updated truck.
// Returns errs.ObjectNotFoundError when the truck does not exist and
// ErrNotTruckOwner when it belongs to another manager.
func (h *EditTruckCommandHandler) Handle(ctx context.Context, cmd EditTruckCommand) (*truck.Truck, error) {
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

	truckRepo := uow.TruckRepository()
	truckEntity, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return nil, err
	}
	if truckEntity == nil {
		return nil, errs.NewObjectNotFoundError("truck_id", cmd.TruckID())
	}
	if truckEntity.Owner() != cmd.RequesterAuthID() {
		return nil, ErrNotTruckOwner
	}

	if cmd.TruckType().IsSet() {
		if err = truckEntity.ChangeTruckType(cmd.TruckType().Value()); err != nil {
			return nil, err
		}
	}
	if cmd.Length().IsSet() {
		if err = truckEntity.ChangeLength(cmd.Length().Value()); err != nil {
			return nil, err
		}
	}
	if cmd.Axles().IsSet() {
		if err = truckEntity.ChangeAxles(cmd.Axles().Value()); err != nil {
			return nil, err
		}
	}
	if cmd.ClearPackages() {
		truckEntity.ClearPackageIDs()
	}

	if err = truckRepo.Update(ctx, truckEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return truckEntity, nil
}
