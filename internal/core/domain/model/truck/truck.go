// Package truck contains the Truck aggregate: a registered vehicle owned by a
// truck manager that carries zero or more packages by reference.
package truck

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrTruckIsNotConstructed is returned when a Truck instance was not created
	// through NewTruck or RestoreTruck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck or RestoreTruck constructor")

	// ErrIdentityAlreadyAssigned is returned when SetID is called on a truck
	// that already carries a store-assigned identity.
	ErrIdentityAlreadyAssigned = errors.New("truck identity has already been assigned")

	// ErrTruckTypeIsRequired indicates a missing truck type.
	ErrTruckTypeIsRequired = errs.NewValueIsRequiredError("truck type")

	// ErrLengthIsInvalid indicates a non-positive truck length.
	ErrLengthIsInvalid = errs.NewValueIsInvalidError("truck length")

	// ErrAxlesIsInvalid indicates a non-positive axle count.
	ErrAxlesIsInvalid = errs.NewValueIsInvalidError("axles")

	// ErrOwnerIsRequired indicates a missing owner auth subject.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("owner")
)

// Truck is the aggregate root for a registered vehicle.
//
// A truck is owned by exactly one truck manager, identified by the manager's
// external auth subject id (not the manager's datastore row id). The set of
// package ids currently loaded on the truck is held as an identity-keyed set;
// AssignPackageID and UnassignPackageID are the only sanctioned mutators of
// that relationship and both are idempotent.
//
// A freshly created truck has the zero EntityID until a repository persists
// it and writes the store-assigned identity back via SetID.
type Truck struct {
	id         kernel.EntityID
	truckType  string
	length     int
	axles      int
	owner      string
	packageIDs kernel.IDSet

	isConstructed bool
}

// NewTruck creates an unsaved truck with an empty package set.
//
// Example:
//
//	t, err := truck.NewTruck("Box truck", 20, 2, "auth0|abc123")
//	if err != nil {
//	    // handle validation error
//	}
//	// t.ID().IsZero() == true until a repository persists it
func NewTruck(truckType string, length, axles int, owner string) (*Truck, error) {
	t := &Truck{
		packageIDs:    kernel.NewIDSet(),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setTruckType(truckType),
		t.setLength(length),
		t.setAxles(axles),
		t.setOwner(owner),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a persisted truck from storage, including its
// store-assigned identity and the package ids reconstructed from carrier
// references.
func RestoreTruck(
	id kernel.EntityID,
	truckType string,
	length, axles int,
	owner string,
	packageIDs kernel.IDSet,
) (*Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	t, err := NewTruck(truckType, length, axles, owner)
	if err != nil {
		return nil, err
	}

	t.id = id
	t.packageIDs = kernel.NewIDSet(packageIDs.Values()...)
	return t, nil
}

// Validate ensures the Truck was created through a constructor.
func (t *Truck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckIsNotConstructed
	}
	return nil
}

// ID returns the truck's identity. Zero until persisted.
func (t *Truck) ID() kernel.EntityID {
	return t.id
}

// SetID records the store-assigned identity after the first insert.
// Returns ErrIdentityAlreadyAssigned if the truck already has one.
func (t *Truck) SetID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !t.id.IsZero() {
		return ErrIdentityAlreadyAssigned
	}
	t.id = id
	return nil
}

// TruckType returns the free-form vehicle type, e.g. "Box truck".
func (t *Truck) TruckType() string {
	return t.truckType
}

// Length returns the truck length in feet.
func (t *Truck) Length() int {
	return t.length
}

// Axles returns the number of axles.
func (t *Truck) Axles() int {
	return t.axles
}

// Owner returns the auth subject id of the managing user.
func (t *Truck) Owner() string {
	return t.owner
}

// PackageIDs returns a copy of the assigned package id set. Mutating the
// returned set does not affect the truck.
func (t *Truck) PackageIDs() kernel.IDSet {
	return kernel.NewIDSet(t.packageIDs.Values()...)
}

// AssignPackageID adds a package id to the truck's set. Assigning an already
// present id is a no-op, never an error and never a duplicate.
func (t *Truck) AssignPackageID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.packageIDs.Add(id)
	return nil
}

// UnassignPackageID removes a package id from the truck's set. Removing an
// absent id is a silent no-op.
func (t *Truck) UnassignPackageID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.packageIDs.Remove(id)
	return nil
}

// HasPackages reports whether at least one package is assigned.
func (t *Truck) HasPackages() bool {
	return !t.packageIDs.IsEmpty()
}

// ClearPackageIDs resets the assignment set to empty. Used by the full-replace
// edit flow.
func (t *Truck) ClearPackageIDs() {
	t.packageIDs.Clear()
}

// ChangeTruckType updates the vehicle type.
func (t *Truck) ChangeTruckType(truckType string) error {
	return t.setTruckType(truckType)
}

// ChangeLength updates the truck length.
func (t *Truck) ChangeLength(length int) error {
	return t.setLength(length)
}

// ChangeAxles updates the axle count.
func (t *Truck) ChangeAxles(axles int) error {
	return t.setAxles(axles)
}

// IsEqual compares two trucks by identity.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Truck) setTruckType(truckType string) error {
	if truckType == "" {
		return ErrTruckTypeIsRequired
	}
	t.truckType = truckType
	return nil
}

func (t *Truck) setLength(length int) error {
	if length <= 0 {
		return ErrLengthIsInvalid
	}
	t.length = length
	return nil
}

func (t *Truck) setAxles(axles int) error {
	if axles <= 0 {
		return ErrAxlesIsInvalid
	}
	t.axles = axles
	return nil
}

func (t *Truck) setOwner(owner string) error {
	if owner == "" {
		return ErrOwnerIsRequired
	}
	t.owner = owner
	return nil
}
