package cargorepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db            *gorm.DB
	lastAddedID   kernel.EntityID
	lastDeletedID kernel.EntityID
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// Add saves a new package to the database and writes the store-assigned
// identity back to the aggregate.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *cargo.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewEntityID(dto.ID)
	if err != nil {
		return err
	}

	if aggregate.ID().IsZero() {
		if err = aggregate.SetID(id); err != nil {
			return err
		}
	}

	r.lastAddedID = id
	return nil
}

// Update saves an existing package to the database, including its carrier
// reference. Save writes every column, so a cleared carrier becomes NULL.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *cargo.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a package by ID. Returns (nil, nil) when no record exists.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.EntityID) (*cargo.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //absence is a value here
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetList retrieves a page of packages ordered by identity. It reads one row
// past the requested page to learn whether a further page exists.
func (r *GormPackageRepository) GetList(ctx context.Context, limit, offset int) ([]*cargo.Package, bool, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit + 1).
		Offset(offset).
		Find(&dtos).Error; err != nil {
		return nil, false, err
	}

	hasMore := len(dtos) > limit
	if hasMore {
		dtos = dtos[:limit]
	}

	packages := make([]*cargo.Package, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, false, err
		}
		packages = append(packages, aggregate)
	}

	return packages, hasMore, nil
}

// Remove deletes the package with the given id. Removing an absent id is a
// no-op observable through IDOfDeletedEntity.
func (r *GormPackageRepository) Remove(ctx context.Context, id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.lastDeletedID = kernel.EntityID{}

	result := r.db.WithContext(ctx).Delete(&PackageDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		r.lastDeletedID = id
	}
	return nil
}

// IDOfAddedEntity reports the identity assigned by the most recent Add.
func (r *GormPackageRepository) IDOfAddedEntity() kernel.EntityID {
	return r.lastAddedID
}

// IDOfDeletedEntity reports the identity deleted by the most recent Remove.
func (r *GormPackageRepository) IDOfDeletedEntity() kernel.EntityID {
	return r.lastDeletedID
}
