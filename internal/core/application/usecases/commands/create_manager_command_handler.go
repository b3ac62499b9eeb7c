package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manager"
)

// CreateManagerCommandHandler handles truck manager registration.
// Persists a new manager row for an external auth subject and reports the
// store-assigned identity. Idempotence against repeated logins is the
// caller's responsibility: check GetManagerByAuthID before invoking this.
type CreateManagerCommandHandler struct {
	uowFactory ManagerUoWFactory
}

// NewCreateManagerCommandHandler creates a handler for manager registration.
func NewCreateManagerCommandHandler(uowFactory ManagerUoWFactory) CreateManagerCommandHandler {
	return CreateManagerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manager creation command.
func (h *CreateManagerCommandHandler) Handle(ctx context.Context, cmd CreateManagerCommand) (kernel.EntityID, error) {
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

	managerRepo := uow.ManagerRepository()
	managerEntity, err := manager.NewManager(cmd.AuthID())
	if err != nil {
		return kernel.EntityID{}, err
	}

	if err = managerRepo.Add(ctx, managerEntity); err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	return managerEntity.ID(), nil
}
