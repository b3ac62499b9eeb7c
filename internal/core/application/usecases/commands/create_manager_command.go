package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrCreateManagerCommandIsNotConstructed = errors.New(
		"CreateManagerCommand must be created via NewCreateManagerCommand constructor",
	)
	ErrAuthIDIsRequired = errors.New("auth id is required")
)

// CreateManagerCommand represents a request to register a truck manager for
// an external auth subject. The handler never deduplicates by auth id:
// callers must look up an existing manager first, typically on login.
type CreateManagerCommand struct { //nolint:recvcheck //using for validation
	authID string

	guard guard.ConstructorGuard
}

// NewCreateManagerCommand creates a command to register a manager for the
// given auth subject id.
func NewCreateManagerCommand(authID string) (CreateManagerCommand, error) {
	command := CreateManagerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAuthID(authID); err != nil {
		return CreateManagerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManagerCommand) Validate() error {
	return c.guard.Validate(ErrCreateManagerCommandIsNotConstructed)
}

// AuthID returns the external auth subject id from the command.
func (c CreateManagerCommand) AuthID() string {
	return c.authID
}

func (c *CreateManagerCommand) setAuthID(authID string) error {
	if authID == "" {
		return ErrAuthIDIsRequired
	}

	c.authID = authID
	return nil
}
