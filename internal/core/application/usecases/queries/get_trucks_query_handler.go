package queries

import (
	"context"
)

// GetTrucksQueryHandler retrieves pages of trucks through the unit of work.
type GetTrucksQueryHandler struct {
	uowFactory TruckReadUoWFactory
}

// NewGetTrucksQueryHandler creates a handler for paged truck queries.
func NewGetTrucksQueryHandler(uowFactory TruckReadUoWFactory) GetTrucksQueryHandler {
	return GetTrucksQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. The HasMore flag comes from the repository's
// continuation probe, not from counting remaining rows.
func (h GetTrucksQueryHandler) Handle(ctx context.Context, query GetTrucksQuery) (TrucksPageResponse, error) {
	if err := query.Validate(); err != nil {
		return TrucksPageResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TrucksPageResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trucks, hasMore, err := uow.TruckRepository().GetList(ctx, query.Limit(), query.Offset())
	if err != nil {
		return TrucksPageResponse{}, err
	}

	page := TrucksPageResponse{
		Trucks:  make([]TruckResponse, 0, len(trucks)),
		HasMore: hasMore,
	}
	for _, t := range trucks {
		page.Trucks = append(page.Trucks, truckResponseFrom(t))
	}

	return page, nil
}
