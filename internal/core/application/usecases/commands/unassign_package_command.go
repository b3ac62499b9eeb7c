package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUnassignPackageCommandIsNotConstructed = errors.New(
	"UnassignPackageCommand must be created via NewUnassignPackageCommand constructor",
)

// UnassignPackageCommand represents a request to unload a package from a
// truck owned by the requesting manager.
type UnassignPackageCommand struct { //nolint:recvcheck //using for validation
	truckID         kernel.EntityID
	packageID       kernel.EntityID
	requesterAuthID string

	guard guard.ConstructorGuard
}

// NewUnassignPackageCommand creates a command to remove a package from a
// truck on behalf of the requesting manager.
func NewUnassignPackageCommand(
	truckID, packageID kernel.EntityID,
	requesterAuthID string,
) (UnassignPackageCommand, error) {
	command := UnassignPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(truckID),
		command.setPackageID(packageID),
		command.setRequesterAuthID(requesterAuthID),
	); err != nil {
		return UnassignPackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignPackageCommand) Validate() error {
	return c.guard.Validate(ErrUnassignPackageCommandIsNotConstructed)
}

// TruckID returns the id of the carrier truck.
func (c UnassignPackageCommand) TruckID() kernel.EntityID {
	return c.truckID
}

// PackageID returns the id of the package being removed.
func (c UnassignPackageCommand) PackageID() kernel.EntityID {
	return c.packageID
}

// RequesterAuthID returns the auth subject id of the requesting manager.
func (c UnassignPackageCommand) RequesterAuthID() string {
	return c.requesterAuthID
}

func (c *UnassignPackageCommand) setTruckID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *UnassignPackageCommand) setPackageID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *UnassignPackageCommand) setRequesterAuthID(requesterAuthID string) error {
	if requesterAuthID == "" {
		return ErrRequesterAuthIDIsRequired
	}

	c.requesterAuthID = requesterAuthID
	return nil
}
