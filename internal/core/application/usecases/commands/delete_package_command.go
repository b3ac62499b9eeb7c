package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand represents a request to delete a package.
// An assigned package may be deleted; the carrier's assignment set shrinks
// implicitly because it is derived from the stored carrier references.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewDeletePackageCommand creates a command to delete the package with the
// given id.
func NewDeletePackageCommand(packageID kernel.EntityID) (DeletePackageCommand, error) {
	command := DeletePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPackageID(packageID); err != nil {
		return DeletePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

// PackageID returns the id of the package being deleted.
func (c DeletePackageCommand) PackageID() kernel.EntityID {
	return c.packageID
}

func (c *DeletePackageCommand) setPackageID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}
