package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrGetManagerByAuthIDQueryIsNotConstructed = errors.New(
		"GetManagerByAuthIDQuery must be created via NewGetManagerByAuthIDQuery constructor",
	)
	ErrAuthIDIsRequired = errors.New("auth id is required")
)

// GetManagerByAuthIDQuery looks up the manager registered for an external
// auth subject. The HTTP layer runs it on every authenticated request to
// decide whether a first-login registration is needed.
type GetManagerByAuthIDQuery struct {
	authID string

	guard guard.ConstructorGuard
}

// NewGetManagerByAuthIDQuery creates a lookup query for the given auth
// subject id.
func NewGetManagerByAuthIDQuery(authID string) (GetManagerByAuthIDQuery, error) {
	if authID == "" {
		return GetManagerByAuthIDQuery{}, ErrAuthIDIsRequired
	}

	return GetManagerByAuthIDQuery{authID: authID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManagerByAuthIDQuery) Validate() error {
	return q.guard.Validate(ErrGetManagerByAuthIDQueryIsNotConstructed)
}

// AuthID returns the external auth subject id being looked up.
func (q GetManagerByAuthIDQuery) AuthID() string {
	return q.authID
}
