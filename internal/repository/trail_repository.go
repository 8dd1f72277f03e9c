package repository

import (
	"context"
	"errors"
	"fmt"

	"trail-catalog-go/internal/errs"
	"trail-catalog-go/internal/geo"
	"trail-catalog-go/internal/model"

	"gorm.io/gorm"
)

// TrailRepository is the persistence boundary for trails.
type TrailRepository interface {
	Create(ctx context.Context, trail *model.Trail) error
	GetByID(ctx context.Context, id string) (*model.Trail, error)
	Find(ctx context.Context, filter TrailFilter) ([]model.Trail, error)
	FindNear(ctx context.Context, lat, lon, radiusKm float64) ([]model.Trail, error)
	Update(ctx context.Context, trail *model.Trail) error
	Delete(ctx context.Context, id string) error
}

type trailRepository struct {
	db *gorm.DB
}

// NewTrailRepository creates a gorm-backed TrailRepository.
func NewTrailRepository(db *gorm.DB) TrailRepository {
	return &trailRepository{db: db}
}

// Create inserts a new trail record.
func (r *trailRepository) Create(ctx context.Context, trail *model.Trail) error {
	if err := r.db.WithContext(ctx).Create(trail).Error; err != nil {
		return fmt.Errorf("failed to create trail: %w", err)
	}
	return nil
}

// GetByID fetches a trail by its identifier.
func (r *trailRepository) GetByID(ctx context.Context, id string) (*model.Trail, error) {
	var trail model.Trail
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("trail %s: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trail: %w", err)
	}
	return &trail, nil
}

// Find returns all trails matching the filter. Indexed scalar clauses narrow
// in SQL; the full predicate (including the tag superset clause, which lives
// in a JSON column) is then applied row by row.
func (r *trailRepository) Find(ctx context.Context, filter TrailFilter) ([]model.Trail, error) {
	query := r.db.WithContext(ctx).Model(&model.Trail{})

	if filter.ID != "" {
		query = query.Where("id = ?", filter.ID)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Valley != "" {
		query = query.Where("valley = ?", filter.Valley)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.MinLength != nil {
		query = query.Where("length_km >= ?", *filter.MinLength)
	}
	if filter.MaxLength != nil {
		query = query.Where("length_km <= ?", *filter.MaxLength)
	}
	if filter.MinDuration != nil {
		query = query.Where("duration_hours * 60 + duration_minutes >= ?", *filter.MinDuration)
	}
	if filter.MaxDuration != nil {
		query = query.Where("duration_hours * 60 + duration_minutes <= ?", *filter.MaxDuration)
	}

	var candidates []model.Trail
	if err := query.Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to query trails: %w", err)
	}

	trails := make([]model.Trail, 0, len(candidates))
	for i := range candidates {
		if filter.Matches(&candidates[i]) {
			trails = append(trails, candidates[i])
		}
	}
	return trails, nil
}

// FindNear returns trails whose location lies within radiusKm of the center,
// by great-circle distance. A bounding box over the stored decimal-degree
// columns narrows the scan; the haversine test decides containment.
func (r *trailRepository) FindNear(ctx context.Context, lat, lon, radiusKm float64) ([]model.Trail, error) {
	minLat, maxLat, minLon, maxLon := geo.BoundingBox(lat, lon, radiusKm)

	var candidates []model.Trail
	err := r.db.WithContext(ctx).
		Where("coord_dd_lat BETWEEN ? AND ?", minLat, maxLat).
		Where("coord_dd_lon BETWEEN ? AND ?", minLon, maxLon).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query trails by radius: %w", err)
	}

	trails := make([]model.Trail, 0, len(candidates))
	for _, t := range candidates {
		if geo.HaversineKm(lat, lon, t.Coordinates.DD.Lat, t.Coordinates.DD.Lon) <= radiusKm {
			trails = append(trails, t)
		}
	}
	return trails, nil
}

// Update persists a revalidated trail record.
func (r *trailRepository) Update(ctx context.Context, trail *model.Trail) error {
	if err := r.db.WithContext(ctx).Save(trail).Error; err != nil {
		return fmt.Errorf("failed to update trail: %w", err)
	}
	return nil
}

// Delete removes a trail by its identifier.
func (r *trailRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Trail{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete trail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("trail %s: %w", id, errs.ErrNotFound)
	}
	return nil
}
