package service

import (
	"context"
	"fmt"
	"math"

	"trail-catalog-go/internal/errs"
	"trail-catalog-go/internal/geo"
	"trail-catalog-go/internal/model"
	"trail-catalog-go/internal/repository"
	"trail-catalog-go/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TrailService orchestrates trail reads and gated writes.
type TrailService struct {
	trails    repository.TrailRepository
	validator *validation.TrailValidator
	logger    *logrus.Logger
}

// NewTrailService creates a trail service.
func NewTrailService(trails repository.TrailRepository, validator *validation.TrailValidator, logger *logrus.Logger) *TrailService {
	return &TrailService{
		trails:    trails,
		validator: validator,
		logger:    logger,
	}
}

// Create builds a trail from the input, runs it through the write gate and
// persists it. Validation (including the owner existence check) completes
// before the store is touched; a failed gate persists nothing.
func (s *TrailService) Create(ctx context.Context, in TrailInput) (*model.Trail, error) {
	trail := &model.Trail{
		ID:         uuid.New().String(),
		Difficulty: model.DifficultyEasy,
		Duration:   model.Duration{Hours: 0, Minutes: 0},
		Tags:       model.StringSlice{},
		// NaN marks the coordinates as not yet provided; the gate rejects it
		// unless the input supplies a real decimal-degree pair.
		Coordinates: model.Coordinates{DD: model.DD{Lat: math.NaN(), Lon: math.NaN()}},
	}
	in.apply(trail)

	if err := s.validator.Validate(ctx, trail); err != nil {
		return nil, err
	}

	if err := s.trails.Create(ctx, trail); err != nil {
		s.logger.Errorf("failed to persist trail %s: %v", trail.ID, err)
		return nil, err
	}

	s.logger.Infof("created trail %s (%s)", trail.ID, trail.Title)
	return trail, nil
}

// Get fetches a single trail by id.
func (s *TrailService) Get(ctx context.Context, id string) (*model.Trail, error) {
	return s.trails.GetByID(ctx, id)
}

// List returns the trails matching the filter; an empty filter returns all.
func (s *TrailService) List(ctx context.Context, filter repository.TrailFilter) ([]model.Trail, error) {
	trails, err := s.trails.Find(ctx, filter)
	if err != nil {
		s.logger.Errorf("failed to query trails: %v", err)
		return nil, err
	}
	return trails, nil
}

// Update merges the partial input onto the stored record and re-runs the full
// write gate on the merged result: owner re-check, tag renormalization and
// location re-derivation included. The store only sees the validated copy.
func (s *TrailService) Update(ctx context.Context, id string, in TrailInput) (*model.Trail, error) {
	existing, err := s.trails.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	in.apply(&merged)

	if err := s.validator.Validate(ctx, &merged); err != nil {
		return nil, err
	}

	if err := s.trails.Update(ctx, &merged); err != nil {
		s.logger.Errorf("failed to update trail %s: %v", id, err)
		return nil, err
	}

	s.logger.Infof("updated trail %s", id)
	return &merged, nil
}

// Delete removes a trail by id. No cascade: feedback and reports referencing
// the trail are left dangling.
func (s *TrailService) Delete(ctx context.Context, id string) error {
	if err := s.trails.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infof("deleted trail %s", id)
	return nil
}

// FindNear returns trails within radiusKm of the center point, by
// great-circle distance.
func (s *TrailService) FindNear(ctx context.Context, lat, lon, radiusKm float64) ([]model.Trail, error) {
	if _, err := geo.NormalizePoint(lat, lon); err != nil {
		return nil, err
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be a positive number of kilometers", errs.ErrValidation)
	}

	trails, err := s.trails.FindNear(ctx, lat, lon, radiusKm)
	if err != nil {
		s.logger.Errorf("failed radius query around (%v, %v): %v", lat, lon, err)
		return nil, err
	}
	return trails, nil
}
