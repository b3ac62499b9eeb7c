package commands

import "errors"

// Authorization and conflict errors shared by the truck-mutating handlers.
// Handlers return these unwrapped so the HTTP adapter can map them to
// status codes directly.
var (
	// ErrNotTruckOwner is returned when the requesting manager does not own
	// the truck targeted by the command.
	ErrNotTruckOwner = errors.New("truck belongs to another manager")

	// ErrPackageAlreadyAssigned is returned when a package already has a
	// different carrier. Re-assigning a package to its current carrier is
	// not an error.
	ErrPackageAlreadyAssigned = errors.New("package is already assigned to another truck")
)
