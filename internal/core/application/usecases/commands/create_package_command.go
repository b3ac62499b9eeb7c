package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
	ErrShippingTypeIsRequired = errors.New("shipping type is required")
)

// CreatePackageCommand represents a request to register a new package.
// Packages start unassigned; a carrier is attached later through
// AssignPackageCommand. Registration requires no authentication, so the
// command carries no requester identity.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	shippingType string
	weight       kernel.Weight
	shippingDate kernel.ShipDate

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a new package.
// Weight and shipping date arrive as already-validated value objects; the
// command re-validates them to reject zero values.
func NewCreatePackageCommand(
	shippingType string,
	weight kernel.Weight,
	shippingDate kernel.ShipDate,
) (CreatePackageCommand, error) {
	command := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShippingType(shippingType),
		command.setWeight(weight),
		command.setShippingDate(shippingDate),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// ShippingType returns the shipping type from the command.
func (c CreatePackageCommand) ShippingType() string {
	return c.shippingType
}

// Weight returns the package weight from the command.
func (c CreatePackageCommand) Weight() kernel.Weight {
	return c.weight
}

// ShippingDate returns the shipping date from the command.
func (c CreatePackageCommand) ShippingDate() kernel.ShipDate {
	return c.shippingDate
}

func (c *CreatePackageCommand) setShippingType(shippingType string) error {
	if shippingType == "" {
		return ErrShippingTypeIsRequired
	}

	c.shippingType = shippingType
	return nil
}

func (c *CreatePackageCommand) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreatePackageCommand) setShippingDate(shippingDate kernel.ShipDate) error {
	if err := shippingDate.Validate(); err != nil {
		return err
	}

	c.shippingDate = shippingDate
	return nil
}
