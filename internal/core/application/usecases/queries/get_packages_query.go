package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetPackagesQueryIsNotConstructed = errors.New(
	"GetPackagesQuery must be created via NewGetPackagesQuery constructor",
)

// GetPackagesQuery retrieves a page of packages in stable store order.
type GetPackagesQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetPackagesQuery creates a paged package query.
// Limit must be positive and offset non-negative.
func NewGetPackagesQuery(limit, offset int) (GetPackagesQuery, error) {
	query := GetPackagesQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setLimit(limit),
		query.setOffset(offset),
	); err != nil {
		return GetPackagesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetPackagesQuery) Limit() int {
	return q.limit
}

// Offset returns the number of records skipped before the page.
func (q GetPackagesQuery) Offset() int {
	return q.offset
}

func (q *GetPackagesQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

func (q *GetPackagesQuery) setOffset(offset int) error {
	if offset < 0 {
		return ErrOffsetIsInvalid
	}

	q.offset = offset
	return nil
}

// PackagesPageResponse is a page of packages plus the continuation indicator.
type PackagesPageResponse struct {
	Packages []PackageResponse
	HasMore  bool
}
