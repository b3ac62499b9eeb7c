// Package cargorepo provides data transfer objects and mapping functions for package persistence.
// The carrier_id column written here is the ground truth for package assignment: a truck's
// assignment set is derived from it, never stored on the truck row.
package cargorepo

import (
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// PackageDTO represents the database structure for persisting package aggregates.
type PackageDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	ShippingType string          `gorm:"type:varchar(255);not null"`
	Weight       decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	ShippingDate time.Time       `gorm:"type:date;not null"`
	CarrierID    *int64          `gorm:"index"`
}

// TableName specifies the database table name for package entities.
// Overrides GORM's default naming convention to use "packages" instead of "package_dtos".
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a package domain aggregate to its database representation.
func fromDomain(aggregate *cargo.Package) PackageDTO {
	var carrierID *int64
	if aggregate.CarrierID() != nil {
		raw := aggregate.CarrierID().Int64()
		carrierID = &raw
	}

	return PackageDTO{
		ID:           aggregate.ID().Int64(),
		ShippingType: aggregate.ShippingType(),
		Weight:       aggregate.Weight().Decimal(),
		ShippingDate: aggregate.ShippingDate().Time(),
		CarrierID:    carrierID,
	}
}

// toDomain converts a database DTO to a package domain aggregate.
func toDomain(dto PackageDTO) (*cargo.Package, error) {
	id, err := kernel.NewEntityID(dto.ID)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.EntityID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.NewEntityID(*dto.CarrierID)
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	return cargo.RestorePackage(id, dto.ShippingType, weight, kernel.ShipDateFromTime(dto.ShippingDate), carrierID)
}
