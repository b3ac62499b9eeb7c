// Package cargo contains the Package entity: a shippable item that may be
// assigned to at most one carrier truck at a time.
package cargo

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not
	// created through NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage constructor")

	// ErrIdentityAlreadyAssigned is returned when SetID is called on a package
	// that already carries a store-assigned identity.
	ErrIdentityAlreadyAssigned = errors.New("package identity has already been assigned")

	// ErrShippingTypeIsRequired indicates a missing shipping type.
	ErrShippingTypeIsRequired = errs.NewValueIsRequiredError("shipping type")
)

// Package is a shippable item. Equality is defined solely by identity: two
// Package values with the same id denote the same entity regardless of their
// other fields, which is what allows packages to live in identity-keyed sets.
//
// The carrier reference is nullable; an absent carrier means the package is
// unassigned. AssignCarrier and ClearCarrier are the only sanctioned mutators
// of that reference.
type Package struct {
	id           kernel.EntityID
	shippingType string
	weight       kernel.Weight
	shippingDate kernel.ShipDate
	carrierID    *kernel.EntityID

	isConstructed bool
}

// NewPackage creates an unsaved, unassigned package.
//
// Example:
//
//	w, _ := kernel.ParseWeight("5.0")
//	p, err := cargo.NewPackage("overnight", w, kernel.NewShipDate(2022, time.June, 25))
//	if err != nil {
//	    // handle validation error
//	}
func NewPackage(shippingType string, weight kernel.Weight, shippingDate kernel.ShipDate) (*Package, error) {
	p := &Package{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setShippingType(shippingType),
		p.setWeight(weight),
		p.setShippingDate(shippingDate),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a persisted package from storage.
// carrierID is nil for an unassigned package.
func RestorePackage(
	id kernel.EntityID,
	shippingType string,
	weight kernel.Weight,
	shippingDate kernel.ShipDate,
	carrierID *kernel.EntityID,
) (*Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p, err := NewPackage(shippingType, weight, shippingDate)
	if err != nil {
		return nil, err
	}

	p.id = id
	if carrierID != nil {
		if err = p.AssignCarrier(*carrierID); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Validate ensures the Package was created through a constructor.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package's identity. Zero until persisted.
func (p *Package) ID() kernel.EntityID {
	return p.id
}

// SetID records the store-assigned identity after the first insert.
// Returns ErrIdentityAlreadyAssigned if the package already has one.
func (p *Package) SetID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !p.id.IsZero() {
		return ErrIdentityAlreadyAssigned
	}
	p.id = id
	return nil
}

// ShippingType returns the free-form shipping class, e.g. "overnight".
func (p *Package) ShippingType() string {
	return p.shippingType
}

// Weight returns the exact decimal weight.
func (p *Package) Weight() kernel.Weight {
	return p.weight
}

// ShippingDate returns the calendar shipping date.
func (p *Package) ShippingDate() kernel.ShipDate {
	return p.shippingDate
}

// CarrierID returns the id of the truck carrying this package, or nil when
// the package is unassigned. The returned pointer is a copy.
func (p *Package) CarrierID() *kernel.EntityID {
	if p.carrierID == nil {
		return nil
	}
	id := *p.carrierID
	return &id
}

// IsAssigned reports whether a carrier truck holds this package.
func (p *Package) IsAssigned() bool {
	return p.carrierID != nil
}

// AssignCarrier sets the carrying truck. Re-assigning the same carrier is a
// no-op.
func (p *Package) AssignCarrier(truckID kernel.EntityID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	id := truckID
	p.carrierID = &id
	return nil
}

// ClearCarrier marks the package unassigned. Clearing an unassigned package
// is a silent no-op.
func (p *Package) ClearCarrier() {
	p.carrierID = nil
}

// ChangeShippingType updates the shipping class.
func (p *Package) ChangeShippingType(shippingType string) error {
	return p.setShippingType(shippingType)
}

// ChangeWeight updates the weight.
func (p *Package) ChangeWeight(weight kernel.Weight) error {
	return p.setWeight(weight)
}

// ChangeShippingDate updates the shipping date.
func (p *Package) ChangeShippingDate(shippingDate kernel.ShipDate) error {
	return p.setShippingDate(shippingDate)
}

// IsEqual compares two packages by identity only.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Package) setShippingType(shippingType string) error {
	if shippingType == "" {
		return ErrShippingTypeIsRequired
	}
	p.shippingType = shippingType
	return nil
}

func (p *Package) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Package) setShippingDate(shippingDate kernel.ShipDate) error {
	if err := shippingDate.Validate(); err != nil {
		return err
	}
	p.shippingDate = shippingDate
	return nil
}
