package queries

import (
	"context"

	"freight/internal/core/domain/model/manager"
)

// GetManagersQueryHandler retrieves pages of managers through the unit of work.
type GetManagersQueryHandler struct {
	uowFactory ManagerReadUoWFactory
}

// NewGetManagersQueryHandler creates a handler for paged manager queries.
func NewGetManagersQueryHandler(uowFactory ManagerReadUoWFactory) GetManagersQueryHandler {
	return GetManagersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetManagersQueryHandler) Handle(ctx context.Context, query GetManagersQuery) (ManagersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return ManagersPageResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ManagersPageResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	managers, hasMore, err := uow.ManagerRepository().GetList(ctx, query.Limit(), query.Offset())
	if err != nil {
		return ManagersPageResponse{}, err
	}

	page := ManagersPageResponse{
		Managers: make([]ManagerResponse, 0, len(managers)),
		HasMore:  hasMore,
	}
	for _, m := range managers {
		page.Managers = append(page.Managers, managerResponseFrom(m))
	}

	return page, nil
}

func managerResponseFrom(m *manager.Manager) ManagerResponse {
	return ManagerResponse{
		ID:       m.ID(),
		AuthID:   m.AuthID(),
		TruckIDs: m.TruckIDs().Values(),
	}
}
