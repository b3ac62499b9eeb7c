package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrEditTruckCommandIsNotConstructed = errors.New(
		"EditTruckCommand must be created via NewEditTruckCommand constructor",
	)
	ErrRequesterAuthIDIsRequired = errors.New("requester auth id is required")
)

// EditTruckCommand represents a partial update of an existing truck.
// Each mutable field travels as a Patch so that an omitted field and a
// supplied zero value stay distinguishable; only supplied fields are
// applied. ClearPackages additionally empties the truck's assignment set,
// which full-replace edits use to reset carrier state in the same commit.
type EditTruckCommand struct { //nolint:recvcheck //using for validation
	truckID         kernel.EntityID
	requesterAuthID string
	truckType       Patch[string]
	length          Patch[int]
	axles           Patch[int]
	clearPackages   bool

	guard guard.ConstructorGuard
}

// NewEditTruckCommand creates a command to edit the truck with the given id
// on behalf of the requesting manager. Supplied patches are validated with
// the same rules as creation; unset patches are ignored.
func NewEditTruckCommand(
	truckID kernel.EntityID,
	requesterAuthID string,
	truckType Patch[string],
	length Patch[int],
	axles Patch[int],
	clearPackages bool,
) (EditTruckCommand, error) {
	command := EditTruckCommand{
		guard:         guard.NewConstructorGuard(),
		truckType:     truckType,
		length:        length,
		axles:         axles,
		clearPackages: clearPackages,
	}

	if err := errors.Join(
		command.setTruckID(truckID),
		command.setRequesterAuthID(requesterAuthID),
		command.validatePatches(),
	); err != nil {
		return EditTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditTruckCommandIsNotConstructed if validation fails.
func (c EditTruckCommand) Validate() error {
	return c.guard.Validate(ErrEditTruckCommandIsNotConstructed)
}

// TruckID returns the id of the truck being edited.
func (c EditTruckCommand) TruckID() kernel.EntityID {
	return c.truckID
}

// RequesterAuthID returns the auth subject id of the requesting manager.
func (c EditTruckCommand) RequesterAuthID() string {
	return c.requesterAuthID
}

// TruckType returns the truck type patch.
func (c EditTruckCommand) TruckType() Patch[string] {
	return c.truckType
}

// Length returns the truck length patch.
func (c EditTruckCommand) Length() Patch[int] {
	return c.length
}

// Axles returns the axle count patch.
func (c EditTruckCommand) Axles() Patch[int] {
	return c.axles
}

// ClearPackages reports whether the edit empties the assignment set.
func (c EditTruckCommand) ClearPackages() bool {
	return c.clearPackages
}

func (c *EditTruckCommand) setTruckID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *EditTruckCommand) setRequesterAuthID(requesterAuthID string) error {
	if requesterAuthID == "" {
		return ErrRequesterAuthIDIsRequired
	}

	c.requesterAuthID = requesterAuthID
	return nil
}

func (c *EditTruckCommand) validatePatches() error {
	var errList []error

	if c.truckType.IsSet() && c.truckType.Value() == "" {
		errList = append(errList, ErrTruckTypeIsRequired)
	}
	if c.length.IsSet() && c.length.Value() <= 0 {
		errList = append(errList, ErrLengthIsInvalid)
	}
	if c.axles.IsSet() && c.axles.Value() <= 0 {
		errList = append(errList, ErrAxlesIsInvalid)
	}

	return errors.Join(errList...)
}
