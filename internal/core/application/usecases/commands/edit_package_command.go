package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrEditPackageCommandIsNotConstructed = errors.New(
	"EditPackageCommand must be created via NewEditPackageCommand constructor",
)

// EditPackageCommand represents a partial update of an existing package.
// Mutable fields travel as Patches; ClearCarrier detaches the package from
// its truck, which full-replace edits use to reset carrier state in the
// same commit.
type EditPackageCommand struct { //nolint:recvcheck //using for validation
	packageID    kernel.EntityID
	shippingType Patch[string]
	weight       Patch[kernel.Weight]
	shippingDate Patch[kernel.ShipDate]
	clearCarrier bool

	guard guard.ConstructorGuard
}

// NewEditPackageCommand creates a command to edit the package with the
// given id. Supplied patches are validated with the same rules as
// creation; unset patches are ignored.
func NewEditPackageCommand(
	packageID kernel.EntityID,
	shippingType Patch[string],
	weight Patch[kernel.Weight],
	shippingDate Patch[kernel.ShipDate],
	clearCarrier bool,
) (EditPackageCommand, error) {
	command := EditPackageCommand{
		guard:        guard.NewConstructorGuard(),
		shippingType: shippingType,
		weight:       weight,
		shippingDate: shippingDate,
		clearCarrier: clearCarrier,
	}

	if err := errors.Join(
		command.setPackageID(packageID),
		command.validatePatches(),
	); err != nil {
		return EditPackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EditPackageCommand) Validate() error {
	return c.guard.Validate(ErrEditPackageCommandIsNotConstructed)
}

// PackageID returns the id of the package being edited.
func (c EditPackageCommand) PackageID() kernel.EntityID {
	return c.packageID
}

// ShippingType returns the shipping type patch.
func (c EditPackageCommand) ShippingType() Patch[string] {
	return c.shippingType
}

// Weight returns the weight patch.
func (c EditPackageCommand) Weight() Patch[kernel.Weight] {
	return c.weight
}

// ShippingDate returns the shipping date patch.
func (c EditPackageCommand) ShippingDate() Patch[kernel.ShipDate] {
	return c.shippingDate
}

// ClearCarrier reports whether the edit detaches the package from its truck.
func (c EditPackageCommand) ClearCarrier() bool {
	return c.clearCarrier
}

func (c *EditPackageCommand) setPackageID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *EditPackageCommand) validatePatches() error {
	var errList []error

	if c.shippingType.IsSet() && c.shippingType.Value() == "" {
		errList = append(errList, ErrShippingTypeIsRequired)
	}
	if c.weight.IsSet() {
		if err := c.weight.Value().Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if c.shippingDate.IsSet() {
		if err := c.shippingDate.Value().Validate(); err != nil {
			errList = append(errList, err)
		}
	}

	return errors.Join(errList...)
}
