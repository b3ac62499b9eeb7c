// Package manager contains the Manager aggregate: a truck manager account
// created on first login, keyed by the identity provider's subject id.
package manager

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrManagerIsNotConstructed is returned when a Manager instance was not
	// created through NewManager or RestoreManager.
	ErrManagerIsNotConstructed = errors.New("Manager must be created via NewManager or RestoreManager constructor")

	// ErrIdentityAlreadyAssigned is returned when SetID is called on a manager
	// that already carries a store-assigned identity.
	ErrIdentityAlreadyAssigned = errors.New("manager identity has already been assigned")

	// ErrAuthIDIsRequired indicates a missing external auth subject id.
	ErrAuthIDIsRequired = errs.NewValueIsRequiredError("auth ID")
)

// Manager is a truck manager account. The external auth subject id is unique
// per manager and immutable after creation; trucks reference their manager
// through it.
//
// The truck id set is a derived index: ownership ground truth lives on the
// trucks themselves (Truck.Owner), and repositories recompute this set from
// an owner query when restoring a manager. Assign/Unassign mutate only the
// in-memory view and obey the same idempotence laws as the truck's package
// set.
type Manager struct {
	id       kernel.EntityID
	authID   string
	truckIDs kernel.IDSet

	isConstructed bool
}

// NewManager creates an unsaved manager for an external identity. Dedupe
// against re-login is the caller's responsibility: look the auth id up first
// and only create when absent.
func NewManager(authID string) (*Manager, error) {
	if authID == "" {
		return nil, ErrAuthIDIsRequired
	}
	return &Manager{
		authID:        authID,
		truckIDs:      kernel.NewIDSet(),
		isConstructed: true,
	}, nil
}

// RestoreManager reconstructs a persisted manager, with its truck id set
// recomputed from an ownership query.
func RestoreManager(id kernel.EntityID, authID string, truckIDs kernel.IDSet) (*Manager, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m, err := NewManager(authID)
	if err != nil {
		return nil, err
	}

	m.id = id
	m.truckIDs = kernel.NewIDSet(truckIDs.Values()...)
	return m, nil
}

// Validate ensures the Manager was created through a constructor.
func (m *Manager) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManagerIsNotConstructed
	}
	return nil
}

// ID returns the manager's identity. Zero until persisted.
func (m *Manager) ID() kernel.EntityID {
	return m.id
}

// SetID records the store-assigned identity after the first insert.
// Returns ErrIdentityAlreadyAssigned if the manager already has one.
func (m *Manager) SetID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !m.id.IsZero() {
		return ErrIdentityAlreadyAssigned
	}
	m.id = id
	return nil
}

// AuthID returns the external identity-provider subject id.
func (m *Manager) AuthID() string {
	return m.authID
}

// TruckIDs returns a copy of the owned truck id set.
func (m *Manager) TruckIDs() kernel.IDSet {
	return kernel.NewIDSet(m.truckIDs.Values()...)
}

// AssignTruck adds a truck id to the manager's set. Assigning a present id
// is a no-op, never an error and never a duplicate.
func (m *Manager) AssignTruck(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.truckIDs.Add(id)
	return nil
}

// UnassignTruck removes a truck id from the manager's set. Removing an absent
// id is a silent no-op.
func (m *Manager) UnassignTruck(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.truckIDs.Remove(id)
	return nil
}

// HasAssignedTrucks reports whether the manager owns at least one truck.
func (m *Manager) HasAssignedTrucks() bool {
	return !m.truckIDs.IsEmpty()
}

// IsEqual compares two managers by identity.
func (m *Manager) IsEqual(other *Manager) bool {
	return other != nil && m.id.IsEqual(other.id)
}
