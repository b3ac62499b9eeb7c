package kernel

import (
	"strconv"

	"freight/internal/pkg/errs"
)

// ErrEntityIDIsNotAssigned indicates that an EntityID carries no store-assigned
// value yet. The zero EntityID is the legal state of an entity that has never
// been persisted, so this error is only returned where a persisted identity is
// required.
var ErrEntityIDIsNotAssigned = errs.NewValueIsRequiredError("entity ID has not been assigned by the store")

// EntityID is a value object wrapping the datastore-assigned identity of an
// entity. Identities are allocated server-side on first insert; until then an
// entity carries the zero EntityID and IsZero reports true.
//
// EntityID is immutable and comparable, which makes it usable as a map key in
// identity-keyed sets.
//
// Example:
//
//	id, err := kernel.NewEntityID(42)
//	if err != nil {
//	    // handle invalid identity
//	}
//	fmt.Println(id.String()) // "42"
type EntityID struct {
	value int64
}

// NewEntityID creates an EntityID from a store-assigned value.
// Returns an error when the value is not a positive integer.
func NewEntityID(value int64) (EntityID, error) {
	if value <= 0 {
		return EntityID{}, errs.NewValueIsInvalidError("entity ID")
	}
	return EntityID{value: value}, nil
}

// ParseEntityID parses an EntityID from its decimal string representation,
// as it appears in URLs and wire payloads.
func ParseEntityID(s string) (EntityID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return EntityID{}, errs.NewValueIsInvalidErrorWithCause("entity ID", err)
	}
	return NewEntityID(value)
}

// Int64 returns the raw identity value. Zero for an unassigned identity.
func (id EntityID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the identity.
// For an unassigned identity this returns "0".
func (id EntityID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsZero reports whether the identity has not been assigned yet.
func (id EntityID) IsZero() bool {
	return id.value == 0
}

// IsEqual compares two identities by value.
func (id EntityID) IsEqual(other EntityID) bool {
	return id.value == other.value
}

// Validate ensures the identity has been assigned by the store.
// Returns ErrEntityIDIsNotAssigned for the zero EntityID.
func (id EntityID) Validate() error {
	if id.value == 0 {
		return ErrEntityIDIsNotAssigned
	}
	if id.value < 0 {
		return errs.NewValueIsInvalidError("entity ID")
	}
	return nil
}
