package bundlerepo

import (
	"context"
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBundleRepository implements BundleRepository using GORM.
type GormBundleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBundleRepository creates a new GORM bundle repository.
func NewGormBundleRepository(db *gorm.DB, tracker aggregateTracker) *GormBundleRepository {
	return &GormBundleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bundle and its stops to the database.
func (r *GormBundleRepository) Add(ctx context.Context, aggregate *bundle.Bundle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, stops := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)
	if err := tx.Create(&dto).Error; err != nil {
		return err
	}
	if err := tx.Create(&stops).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bundle to the database. Stops are immutable once
// written, so only the bundle row is touched.
func (r *GormBundleRepository) Update(ctx context.Context, aggregate *bundle.Bundle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BundleDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver_id": dto.DriverID,
			"status":    dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bundle by ID, including its stops.
func (r *GormBundleRepository) Get(ctx context.Context, id kernel.UUID) (*bundle.Bundle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BundleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bundle", id.String())
		}
		return nil, err
	}

	stops, err := r.loadStops(ctx, []uuid.UUID{dto.ID})
	if err != nil {
		return nil, err
	}

	return toDomain(dto, stops[dto.ID])
}

// GetAll retrieves all bundles, newest first.
func (r *GormBundleRepository) GetAll(ctx context.Context) ([]*bundle.Bundle, error) {
	var dtos []BundleDTO
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(ctx, dtos)
}

// GetAllActive retrieves all bundles still in progress, oldest first.
func (r *GormBundleRepository) GetAllActive(ctx context.Context) ([]*bundle.Bundle, error) {
	var dtos []BundleDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", bundle.StatusActive.String()).
		Order("created_at asc").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(ctx, dtos)
}

func (r *GormBundleRepository) toDomainSlice(ctx context.Context, dtos []BundleDTO) ([]*bundle.Bundle, error) {
	ids := make([]uuid.UUID, len(dtos))
	for i, dto := range dtos {
		ids[i] = dto.ID
	}

	stops, err := r.loadStops(ctx, ids)
	if err != nil {
		return nil, err
	}

	bundles := make([]*bundle.Bundle, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto, stops[dto.ID])
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// loadStops fetches the stop rows of the given bundles, keyed by bundle and
// ordered by sequence.
func (r *GormBundleRepository) loadStops(ctx context.Context, bundleIDs []uuid.UUID) (map[uuid.UUID][]StopDTO, error) {
	grouped := make(map[uuid.UUID][]StopDTO, len(bundleIDs))
	if len(bundleIDs) == 0 {
		return grouped, nil
	}

	var rows []StopDTO
	err := r.db.WithContext(ctx).
		Where("bundle_id IN ?", bundleIDs).
		Order("bundle_id, sequence asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.BundleID] = append(grouped[row.BundleID], row)
	}
	return grouped, nil
}
