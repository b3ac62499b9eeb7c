package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// CreateTruckCommandHandler handles the business logic for truck registration.
// Creates and persists new truck entities with an empty assignment set and
// reports the store-assigned identity.
type CreateTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewCreateTruckCommandHandler creates a handler for truck registration.
// Requires a TruckUoWFactory for transactional persistence operations.
func NewCreateTruckCommandHandler(uowFactory TruckUoWFactory) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck creation command.
// Creates a new truck entity, persists it within a transaction and returns
// the identity the store assigned to it. Automatically rolls back on any
// error to prevent partial data.
func (h *CreateTruckCommandHandler) Handle(ctx context.Context, cmd CreateTruckCommand) (kernel.EntityID, error) {
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

	truckRepo := uow.TruckRepository()
	truckEntity, err := truck.NewTruck(cmd.TruckType(), cmd.Length(), cmd.Axles(), cmd.OwnerAuthID())
	if err != nil {
		return kernel.EntityID{}, err
	}

	if err = truckRepo.Add(ctx, truckEntity); err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	return truckEntity.ID(), nil
}
