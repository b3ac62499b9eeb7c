package queries

import (
	"context"

	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

// GetTruckQueryHandler retrieves a single truck through the unit of work.
type GetTruckQueryHandler struct {
	uowFactory TruckReadUoWFactory
}

// NewGetTruckQueryHandler creates a handler for single-truck queries.
func NewGetTruckQueryHandler(uowFactory TruckReadUoWFactory) GetTruckQueryHandler {
	return GetTruckQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the truck does not exist.
func (h GetTruckQueryHandler) Handle(ctx context.Context, query GetTruckQuery) (TruckResponse, error) {
	if err := query.Validate(); err != nil {
		return TruckResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TruckResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckEntity, err := uow.TruckRepository().Get(ctx, query.TruckID())
	if err != nil {
		return TruckResponse{}, err
	}
	if truckEntity == nil {
		return TruckResponse{}, errs.NewObjectNotFoundError("truck_id", query.TruckID())
	}

	return truckResponseFrom(truckEntity), nil
}

func truckResponseFrom(t *truck.Truck) TruckResponse {
	return TruckResponse{
		ID:         t.ID(),
		TruckType:  t.TruckType(),
		Length:     t.Length(),
		Axles:      t.Axles(),
		Owner:      t.Owner(),
		PackageIDs: t.PackageIDs().Values(),
	}
}
