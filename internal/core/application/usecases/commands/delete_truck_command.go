package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteTruckCommandIsNotConstructed = errors.New(
	"DeleteTruckCommand must be created via NewDeleteTruckCommand constructor",
)

// DeleteTruckCommand represents a request to delete a truck owned by the
// requesting manager. Deleting releases every package assigned to the truck.
type DeleteTruckCommand struct { //nolint:recvcheck //using for validation
	truckID         kernel.EntityID
	requesterAuthID string

	guard guard.ConstructorGuard
}

// NewDeleteTruckCommand creates a command to delete the truck with the
// given id on behalf of the requesting manager.
func NewDeleteTruckCommand(truckID kernel.EntityID, requesterAuthID string) (DeleteTruckCommand, error) {
	command := DeleteTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(truckID),
		command.setRequesterAuthID(requesterAuthID),
	); err != nil {
		return DeleteTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTruckCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTruckCommandIsNotConstructed)
}

// TruckID returns the id of the truck being deleted.
func (c DeleteTruckCommand) TruckID() kernel.EntityID {
	return c.truckID
}

// RequesterAuthID returns the auth subject id of the requesting manager.
func (c DeleteTruckCommand) RequesterAuthID() string {
	return c.requesterAuthID
}

func (c *DeleteTruckCommand) setTruckID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *DeleteTruckCommand) setRequesterAuthID(requesterAuthID string) error {
	if requesterAuthID == "" {
		return ErrRequesterAuthIDIsRequired
	}

	c.requesterAuthID = requesterAuthID
	return nil
}
