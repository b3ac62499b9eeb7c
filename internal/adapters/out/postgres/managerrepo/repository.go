package managerrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manager"

	"gorm.io/gorm"
)

// GormManagerRepository implements ManagerRepository using GORM.
type GormManagerRepository struct {
	db            *gorm.DB
	lastAddedID   kernel.EntityID
	lastDeletedID kernel.EntityID
}

// NewGormManagerRepository creates a new GORM manager repository.
func NewGormManagerRepository(db *gorm.DB) *GormManagerRepository {
	return &GormManagerRepository{db: db}
}

// Add saves a new manager to the database and writes the store-assigned
// identity back to the aggregate. Add never deduplicates by auth subject:
// every call inserts a fresh row.
func (r *GormManagerRepository) Add(ctx context.Context, aggregate *manager.Manager) error {
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

// Get retrieves a manager by ID, reconstructing the owned-truck set from the
// trucks table. Returns (nil, nil) when no record exists.
func (r *GormManagerRepository) Get(ctx context.Context, id kernel.EntityID) (*manager.Manager, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManagerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //absence is a value here
		}
		return nil, err
	}

	truckIDs, err := r.truckIDsOf(ctx, dto.AuthID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, truckIDs)
}

// GetByAuthID retrieves the manager with the given auth subject. When several
// rows share the subject the one with the lowest identity wins. Returns
// (nil, nil) when no record exists.
func (r *GormManagerRepository) GetByAuthID(ctx context.Context, authID string) (*manager.Manager, error) {
	var dto ManagerDTO
	if err := r.db.WithContext(ctx).
		Where("auth_id = ?", authID).
		Order("id").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //absence is a value here
		}
		return nil, err
	}

	truckIDs, err := r.truckIDsOf(ctx, dto.AuthID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, truckIDs)
}

// GetList retrieves a page of managers ordered by identity. It reads one row
// past the requested page to learn whether a further page exists.
func (r *GormManagerRepository) GetList(ctx context.Context, limit, offset int) ([]*manager.Manager, bool, error) {
	var dtos []ManagerDTO
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

	byOwner, err := r.truckIDsByOwner(ctx, dtos)
	if err != nil {
		return nil, false, err
	}

	managers := make([]*manager.Manager, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, dtoErr := toDomain(dto, byOwner[dto.AuthID])
		if dtoErr != nil {
			return nil, false, dtoErr
		}
		managers = append(managers, aggregate)
	}

	return managers, hasMore, nil
}

// Remove deletes the manager with the given id. Removing an absent id is a
// no-op observable through IDOfDeletedEntity.
func (r *GormManagerRepository) Remove(ctx context.Context, id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.lastDeletedID = kernel.EntityID{}

	result := r.db.WithContext(ctx).Delete(&ManagerDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		r.lastDeletedID = id
	}
	return nil
}

// IDOfAddedEntity reports the identity assigned by the most recent Add.
func (r *GormManagerRepository) IDOfAddedEntity() kernel.EntityID {
	return r.lastAddedID
}

// IDOfDeletedEntity reports the identity deleted by the most recent Remove.
func (r *GormManagerRepository) IDOfDeletedEntity() kernel.EntityID {
	return r.lastDeletedID
}

// truckIDsOf returns the ids of trucks owned by the given auth subject,
// in stable store order.
func (r *GormManagerRepository) truckIDsOf(ctx context.Context, authID string) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Table("trucks").
		Where("owner = ?", authID).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// truckIDsByOwner batch-loads the owned-truck ids of a page of managers.
func (r *GormManagerRepository) truckIDsByOwner(ctx context.Context, dtos []ManagerDTO) (map[string][]int64, error) {
	byOwner := make(map[string][]int64, len(dtos))
	if len(dtos) == 0 {
		return byOwner, nil
	}

	owners := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		owners = append(owners, dto.AuthID)
	}

	var refs []struct {
		ID    int64
		Owner string
	}
	if err := r.db.WithContext(ctx).
		Table("trucks").
		Select("id, owner").
		Where("owner IN ?", owners).
		Order("id").
		Scan(&refs).Error; err != nil {
		return nil, err
	}

	for _, ref := range refs {
		byOwner[ref.Owner] = append(byOwner[ref.Owner], ref.ID)
	}
	return byOwner, nil
}
