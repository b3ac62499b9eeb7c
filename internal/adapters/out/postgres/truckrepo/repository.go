package truckrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTruckRepository implements TruckRepository using GORM.
// Besides the trucks table it also writes the carrier_id column of the
// packages table, which is the ground truth for package assignment.
type GormTruckRepository struct {
	db            *gorm.DB
	lastAddedID   kernel.EntityID
	lastDeletedID kernel.EntityID
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB) *GormTruckRepository {
	return &GormTruckRepository{db: db}
}

// Add saves a new truck to the database and writes the store-assigned
// identity back to the aggregate.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
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

	if err = r.syncCarriers(ctx, aggregate); err != nil {
		return err
	}

	r.lastAddedID = id
	return nil
}

// Update saves an existing truck to the database and reconciles the carrier
// references of the packages table with the truck's assignment set.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
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

	return r.syncCarriers(ctx, aggregate)
}

// Get retrieves a truck by ID, reconstructing its package assignment set
// from the carrier references. Returns (nil, nil) when no record exists.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.EntityID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //absence is a value here
		}
		return nil, err
	}

	packageIDs, err := r.packageIDsOf(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, packageIDs)
}

// GetList retrieves a page of trucks ordered by identity. It reads one row
// past the requested page to learn whether a further page exists.
func (r *GormTruckRepository) GetList(ctx context.Context, limit, offset int) ([]*truck.Truck, bool, error) {
	var dtos []TruckDTO
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

	byTruck, err := r.packageIDsByTruck(ctx, dtos)
	if err != nil {
		return nil, false, err
	}

	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, dtoErr := toDomain(dto, byTruck[dto.ID])
		if dtoErr != nil {
			return nil, false, dtoErr
		}
		trucks = append(trucks, aggregate)
	}

	return trucks, hasMore, nil
}

// Remove deletes the truck with the given id after releasing the carrier
// reference of every package assigned to it. Removing an absent id is a
// no-op observable through IDOfDeletedEntity.
func (r *GormTruckRepository) Remove(ctx context.Context, id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.lastDeletedID = kernel.EntityID{}

	// Release assigned packages first so the delete leaves no dangling references.
	if err := r.db.WithContext(ctx).
		Exec("UPDATE packages SET carrier_id = NULL WHERE carrier_id = ?", id.Int64()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TruckDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		r.lastDeletedID = id
	}
	return nil
}

// IDOfAddedEntity reports the identity assigned by the most recent Add.
func (r *GormTruckRepository) IDOfAddedEntity() kernel.EntityID {
	return r.lastAddedID
}

// IDOfDeletedEntity reports the identity deleted by the most recent Remove.
func (r *GormTruckRepository) IDOfDeletedEntity() kernel.EntityID {
	return r.lastDeletedID
}

// packageIDsOf returns the ids of packages whose carrier reference points at
// the given truck, in stable store order.
func (r *GormTruckRepository) packageIDsOf(ctx context.Context, truckID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Table("packages").
		Where("carrier_id = ?", truckID).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// packageIDsByTruck batch-loads the package ids of a page of trucks.
func (r *GormTruckRepository) packageIDsByTruck(ctx context.Context, dtos []TruckDTO) (map[int64][]int64, error) {
	byTruck := make(map[int64][]int64, len(dtos))
	if len(dtos) == 0 {
		return byTruck, nil
	}

	truckIDs := make([]int64, 0, len(dtos))
	for _, dto := range dtos {
		truckIDs = append(truckIDs, dto.ID)
	}

	var refs []struct {
		ID        int64
		CarrierID int64
	}
	if err := r.db.WithContext(ctx).
		Table("packages").
		Select("id, carrier_id").
		Where("carrier_id IN ?", truckIDs).
		Order("id").
		Scan(&refs).Error; err != nil {
		return nil, err
	}

	for _, ref := range refs {
		byTruck[ref.CarrierID] = append(byTruck[ref.CarrierID], ref.ID)
	}
	return byTruck, nil
}

// syncCarriers reconciles the carrier_id column of the packages table with
// the truck's in-memory assignment set: it claims every package the set
// names and releases every package still pointing at the truck but no
// longer in the set. Claiming fails when a named package is missing or
// already carried by another truck.
func (r *GormTruckRepository) syncCarriers(ctx context.Context, aggregate *truck.Truck) error {
	truckID := aggregate.ID().Int64()

	ids := aggregate.PackageIDs().Values()
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	if len(raw) > 0 {
		result := r.db.WithContext(ctx).Exec(
			"UPDATE packages SET carrier_id = ? WHERE id IN ? AND (carrier_id IS NULL OR carrier_id = ?)",
			truckID, raw, truckID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(raw)) {
			return errs.NewObjectNotFoundError("package_ids", raw)
		}

		return r.db.WithContext(ctx).Exec(
			"UPDATE packages SET carrier_id = NULL WHERE carrier_id = ? AND id NOT IN ?",
			truckID, raw).Error
	}

	return r.db.WithContext(ctx).Exec(
		"UPDATE packages SET carrier_id = NULL WHERE carrier_id = ?", truckID).Error
}
