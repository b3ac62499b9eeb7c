package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrGetTrucksQueryIsNotConstructed = errors.New(
		"GetTrucksQuery must be created via NewGetTrucksQuery constructor",
	)
	ErrLimitIsInvalid  = errors.New("limit must be greater than 0")
	ErrOffsetIsInvalid = errors.New("offset must not be negative")
)

// GetTrucksQuery retrieves a page of trucks in stable store order.
//
// Example:
//
//	query, err := NewGetTrucksQuery(5, 10)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve trucks: %w", err)
//	}
//	if page.HasMore {
//	    // offer a link to offset 15
//	}
type GetTrucksQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetTrucksQuery creates a paged truck query.
// Limit must be positive and offset non-negative.
func NewGetTrucksQuery(limit, offset int) (GetTrucksQuery, error) {
	query := GetTrucksQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setLimit(limit),
		query.setOffset(offset),
	); err != nil {
		return GetTrucksQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetTrucksQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetTrucksQuery) Limit() int {
	return q.limit
}

// Offset returns the number of records skipped before the page.
func (q GetTrucksQuery) Offset() int {
	return q.offset
}

func (q *GetTrucksQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

func (q *GetTrucksQuery) setOffset(offset int) error {
	if offset < 0 {
		return ErrOffsetIsInvalid
	}

	q.offset = offset
	return nil
}

// TrucksPageResponse is a page of trucks plus the continuation indicator.
type TrucksPageResponse struct {
	Trucks  []TruckResponse
	HasMore bool
}
