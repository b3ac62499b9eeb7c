package queries

import (
	"context"
)

// GetManagerByAuthIDQueryHandler looks up managers by auth subject id
// through the unit of work.
type GetManagerByAuthIDQueryHandler struct {
	uowFactory ManagerReadUoWFactory
}

// NewGetManagerByAuthIDQueryHandler creates a handler for auth-id lookups.
func NewGetManagerByAuthIDQueryHandler(uowFactory ManagerReadUoWFactory) GetManagerByAuthIDQueryHandler {
	return GetManagerByAuthIDQueryHandler{uowFactory: uowFactory}
}

// Handle executes the lookup.
// Returns (nil, nil) when no manager is registered for the auth subject:
// absence drives first-login registration and is not an error.
func (h GetManagerByAuthIDQueryHandler) Handle(
	ctx context.Context,
	query GetManagerByAuthIDQuery,
) (*ManagerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	managerEntity, err := uow.ManagerRepository().GetByAuthID(ctx, query.AuthID())
	if err != nil {
		return nil, err
	}
	if managerEntity == nil {
		return nil, nil //nolint:nilnil //absence is a value here
	}

	response := managerResponseFrom(managerEntity)
	return &response, nil
}
