// Package managerrepo provides data transfer objects and mapping functions for
// truck manager persistence. A manager row carries only its identity and auth
// subject; the set of owned trucks is derived from the owner column of the
// trucks table.
package managerrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manager"
)

// ManagerDTO represents the database structure for persisting manager aggregates.
type ManagerDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	AuthID string `gorm:"type:varchar(255);not null;index"`
}

// TableName specifies the database table name for manager entities.
// Overrides GORM's default naming convention to use "truck_managers" instead of "manager_dtos".
func (ManagerDTO) TableName() string {
	return "truck_managers"
}

// fromDomain converts a manager domain aggregate to its database representation.
func fromDomain(aggregate *manager.Manager) ManagerDTO {
	return ManagerDTO{
		ID:     aggregate.ID().Int64(),
		AuthID: aggregate.AuthID(),
	}
}

// toDomain converts a database DTO and the ids of the trucks owned by the
// manager's auth subject back into a manager domain aggregate.
func toDomain(dto ManagerDTO, truckIDs []int64) (*manager.Manager, error) {
	id, err := kernel.NewEntityID(dto.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.EntityID, 0, len(truckIDs))
	for _, raw := range truckIDs {
		truckID, idErr := kernel.NewEntityID(raw)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, truckID)
	}

	return manager.RestoreManager(id, dto.AuthID, kernel.NewIDSet(ids...))
}
