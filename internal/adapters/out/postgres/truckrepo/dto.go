// Package truckrepo provides data transfer objects and mapping functions for truck persistence.
// This package implements the repository pattern for the truck domain aggregate. The truck
// row itself carries only scalar attributes; the set of assigned packages is not stored on
// the truck but derived from the carrier_id column of the packages table.
package truckrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// TruckDTO represents the database structure for persisting truck aggregates.
type TruckDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	TruckType string `gorm:"type:varchar(255);not null"`
	Length    int    `gorm:"type:int;not null"`
	Axles     int    `gorm:"type:int;not null"`
	Owner     string `gorm:"type:varchar(255);not null;index"`
}

// TableName specifies the database table name for truck entities.
// Overrides GORM's default naming convention to use "trucks" instead of "truck_dtos".
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database representation.
// The package assignment set is deliberately absent: it lives in the packages
// table and is reconciled separately by the repository.
func fromDomain(aggregate *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:        aggregate.ID().Int64(),
		TruckType: aggregate.TruckType(),
		Length:    aggregate.Length(),
		Axles:     aggregate.Axles(),
		Owner:     aggregate.Owner(),
	}
}

// toDomain converts a database DTO and the ids of the packages referencing it
// back into a truck domain aggregate.
func toDomain(dto TruckDTO, packageIDs []int64) (*truck.Truck, error) {
	id, err := kernel.NewEntityID(dto.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.EntityID, 0, len(packageIDs))
	for _, raw := range packageIDs {
		packageID, idErr := kernel.NewEntityID(raw)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, packageID)
	}

	return truck.RestoreTruck(id, dto.TruckType, dto.Length, dto.Axles, dto.Owner, kernel.NewIDSet(ids...))
}
