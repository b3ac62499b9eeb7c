package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrCreateTruckCommandIsNotConstructed = errors.New(
		"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
	)
	ErrTruckTypeIsRequired   = errors.New("truck type is required")
	ErrLengthIsInvalid       = errors.New("length must be greater than 0")
	ErrAxlesIsInvalid        = errors.New("axles must be greater than 0")
	ErrOwnerAuthIDIsRequired = errors.New("owner auth id is required")
)

// CreateTruckCommand represents a request to register a new truck for the
// requesting manager. The store assigns the truck's identity on commit, so
// the command carries no id; the handler reports the assigned id instead.
//
// Example:
//
//	cmd, err := NewCreateTruckCommand("flatbed", 18, 3, claims.Sub)
//	if err != nil {
//	    return fmt.Errorf("invalid truck data: %w", err)
//	}
//
//	handler := NewCreateTruckCommandHandler(uowFactory)
//	truckID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create truck: %w", err)
//	}
//	fmt.Printf("Created truck with ID: %s", truckID)
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	truckType   string
	length      int
	axles       int
	ownerAuthID string

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a new truck.
// Validates that the truck type and owner auth id are not empty and that
// length and axles are positive.
func NewCreateTruckCommand(truckType string, length, axles int, ownerAuthID string) (CreateTruckCommand, error) {
	command := CreateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckType(truckType),
		command.setLength(length),
		command.setAxles(axles),
		command.setOwnerAuthID(ownerAuthID),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTruckCommandIsNotConstructed if validation fails.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

// TruckType returns the truck type from the command.
func (c CreateTruckCommand) TruckType() string {
	return c.truckType
}

// Length returns the truck length from the command.
func (c CreateTruckCommand) Length() int {
	return c.length
}

// Axles returns the axle count from the command.
func (c CreateTruckCommand) Axles() int {
	return c.axles
}

// OwnerAuthID returns the auth subject id of the requesting manager.
func (c CreateTruckCommand) OwnerAuthID() string {
	return c.ownerAuthID
}

func (c *CreateTruckCommand) setTruckType(truckType string) error {
	if truckType == "" {
		return ErrTruckTypeIsRequired
	}

	c.truckType = truckType
	return nil
}

func (c *CreateTruckCommand) setLength(length int) error {
	if length <= 0 {
		return ErrLengthIsInvalid
	}

	c.length = length
	return nil
}

func (c *CreateTruckCommand) setAxles(axles int) error {
	if axles <= 0 {
		return ErrAxlesIsInvalid
	}

	c.axles = axles
	return nil
}

func (c *CreateTruckCommand) setOwnerAuthID(ownerAuthID string) error {
	if ownerAuthID == "" {
		return ErrOwnerAuthIDIsRequired
	}

	c.ownerAuthID = ownerAuthID
	return nil
}
