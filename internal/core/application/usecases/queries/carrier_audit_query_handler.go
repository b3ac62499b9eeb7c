package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// CarrierAuditQueryHandler finds dangling carrier references.
// Uses direct SQL for the cross-table scan; the read model never touches
// the aggregates.
type CarrierAuditQueryHandler struct {
	db *gorm.DB
}

// NewCarrierAuditQueryHandler creates a handler for carrier audits.
// Requires a GORM database connection for query execution.
func NewCarrierAuditQueryHandler(db *gorm.DB) CarrierAuditQueryHandler {
	return CarrierAuditQueryHandler{db: db}
}

// Handle executes the audit scan.
// Returns one row per assigned package whose carrier truck is missing.
func (h CarrierAuditQueryHandler) Handle(
	ctx context.Context,
	query CarrierAuditQuery,
) ([]DanglingCarrierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dangling := make([]DanglingCarrierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.carrier_id
		FROM packages p
		LEFT JOIN trucks t ON t.id = p.carrier_id
		WHERE p.carrier_id IS NOT NULL
		  AND t.id IS NULL
		ORDER BY p.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var packageID, carrierID int64

		if err = rows.Scan(&packageID, &carrierID); err != nil {
			return nil, err
		}

		pid, idErr := kernel.NewEntityID(packageID)
		if idErr != nil {
			return nil, idErr
		}
		cid, idErr := kernel.NewEntityID(carrierID)
		if idErr != nil {
			return nil, idErr
		}

		dangling = append(dangling, DanglingCarrierResponse{PackageID: pid, CarrierID: cid})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dangling, nil
}
