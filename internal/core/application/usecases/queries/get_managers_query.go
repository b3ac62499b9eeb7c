package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetManagersQueryIsNotConstructed = errors.New(
	"GetManagersQuery must be created via NewGetManagersQuery constructor",
)

// GetManagersQuery retrieves a page of truck managers in stable store order.
type GetManagersQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetManagersQuery creates a paged manager query.
// Limit must be positive and offset non-negative.
func NewGetManagersQuery(limit, offset int) (GetManagersQuery, error) {
	query := GetManagersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setLimit(limit),
		query.setOffset(offset),
	); err != nil {
		return GetManagersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManagersQuery) Validate() error {
	return q.guard.Validate(ErrGetManagersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetManagersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of records skipped before the page.
func (q GetManagersQuery) Offset() int {
	return q.offset
}

func (q *GetManagersQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

func (q *GetManagersQuery) setOffset(offset int) error {
	if offset < 0 {
		return ErrOffsetIsInvalid
	}

	q.offset = offset
	return nil
}

// ManagerResponse represents a truck manager in the read model, including
// the truck ids reconstructed from the stored owner column.
type ManagerResponse struct {
	ID       kernel.EntityID
	AuthID   string
	TruckIDs []kernel.EntityID
}

// ManagersPageResponse is a page of managers plus the continuation indicator.
type ManagersPageResponse struct {
	Managers []ManagerResponse
	HasMore  bool
}
