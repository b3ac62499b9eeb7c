package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAssignPackageCommandIsNotConstructed = errors.New(
	"AssignPackageCommand must be created via NewAssignPackageCommand constructor",
)

// AssignPackageCommand represents a request to load a package onto a truck
// owned by the requesting manager. The package becomes the truck's cargo by
// reference: the truck records the package id and the package records the
// truck as its carrier.
//
// Example:
//
//	cmd, err := NewAssignPackageCommand(truckID, packageID, claims.Sub)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAssignPackageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign package: %w", err)
//	}
type AssignPackageCommand struct { //nolint:recvcheck //using for validation
	truckID         kernel.EntityID
	packageID       kernel.EntityID
	requesterAuthID string

	guard guard.ConstructorGuard
}

// NewAssignPackageCommand creates a command to assign a package to a truck
// on behalf of the requesting manager.
func NewAssignPackageCommand(
	truckID, packageID kernel.EntityID,
	requesterAuthID string,
) (AssignPackageCommand, error) {
	command := AssignPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(truckID),
		command.setPackageID(packageID),
		command.setRequesterAuthID(requesterAuthID),
	); err != nil {
		return AssignPackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPackageCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackageCommandIsNotConstructed)
}

// TruckID returns the id of the carrier truck.
func (c AssignPackageCommand) TruckID() kernel.EntityID {
	return c.truckID
}

// PackageID returns the id of the package being assigned.
func (c AssignPackageCommand) PackageID() kernel.EntityID {
	return c.packageID
}

// RequesterAuthID returns the auth subject id of the requesting manager.
func (c AssignPackageCommand) RequesterAuthID() string {
	return c.requesterAuthID
}

func (c *AssignPackageCommand) setTruckID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *AssignPackageCommand) setPackageID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *AssignPackageCommand) setRequesterAuthID(requesterAuthID string) error {
	if requesterAuthID == "" {
		return ErrRequesterAuthIDIsRequired
	}

	c.requesterAuthID = requesterAuthID
	return nil
}
