package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCarrierAuditQueryIsNotConstructed = errors.New(
	"CarrierAuditQuery must be created via NewCarrierAuditQuery constructor",
)

// CarrierAuditQuery scans for packages whose carrier reference points at a
// truck that no longer exists. A healthy store never produces such rows
// because deletes release their packages in the same transaction; the audit
// exists to surface violations, not to repair them.
type CarrierAuditQuery struct {
	guard guard.ConstructorGuard
}

// NewCarrierAuditQuery creates a carrier consistency audit query.
// This is a parameterless query that scans the full package table.
func NewCarrierAuditQuery() CarrierAuditQuery {
	return CarrierAuditQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CarrierAuditQuery) Validate() error {
	return q.guard.Validate(ErrCarrierAuditQueryIsNotConstructed)
}

// DanglingCarrierResponse identifies one package whose carrier is missing.
type DanglingCarrierResponse struct {
	PackageID kernel.EntityID
	CarrierID kernel.EntityID
}
