package queries

import (
	"context"
)

// GetPackagesQueryHandler retrieves pages of packages through the unit of work.
type GetPackagesQueryHandler struct {
	uowFactory PackageReadUoWFactory
}

// NewGetPackagesQueryHandler creates a handler for paged package queries.
func NewGetPackagesQueryHandler(uowFactory PackageReadUoWFactory) GetPackagesQueryHandler {
	return GetPackagesQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. The HasMore flag comes from the repository's
// continuation probe, not from counting remaining rows.
func (h GetPackagesQueryHandler) Handle(ctx context.Context, query GetPackagesQuery) (PackagesPageResponse, error) {
	if err := query.Validate(); err != nil {
		return PackagesPageResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PackagesPageResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packages, hasMore, err := uow.PackageRepository().GetList(ctx, query.Limit(), query.Offset())
	if err != nil {
		return PackagesPageResponse{}, err
	}

	page := PackagesPageResponse{
		Packages: make([]PackageResponse, 0, len(packages)),
		HasMore:  hasMore,
	}
	for _, p := range packages {
		page.Packages = append(page.Packages, packageResponseFrom(p))
	}

	return page, nil
}
