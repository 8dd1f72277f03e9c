package service

import (
	"context"
	"testing"

	"trail-catalog-go/internal/errs"
	"trail-catalog-go/internal/geo"
	"trail-catalog-go/internal/model"
	"trail-catalog-go/internal/repository"
	"trail-catalog-go/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeTrailRepo struct {
	records map[string]model.Trail

	createCalls int
	updateCalls int
}

var _ repository.TrailRepository = (*fakeTrailRepo)(nil)

func newFakeTrailRepo() *fakeTrailRepo {
	return &fakeTrailRepo{records: make(map[string]model.Trail)}
}

func (f *fakeTrailRepo) Create(_ context.Context, trail *model.Trail) error {
	f.createCalls++
	f.records[trail.ID] = *trail
	return nil
}

func (f *fakeTrailRepo) GetByID(_ context.Context, id string) (*model.Trail, error) {
	trail, ok := f.records[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &trail, nil
}

func (f *fakeTrailRepo) Find(_ context.Context, filter repository.TrailFilter) ([]model.Trail, error) {
	var out []model.Trail
	for _, trail := range f.records {
		if filter.Matches(&trail) {
			out = append(out, trail)
		}
	}
	return out, nil
}

func (f *fakeTrailRepo) FindNear(_ context.Context, lat, lon, radiusKm float64) ([]model.Trail, error) {
	var out []model.Trail
	for _, trail := range f.records {
		if geo.HaversineKm(lat, lon, trail.Coordinates.DD.Lat, trail.Coordinates.DD.Lon) <= radiusKm {
			out = append(out, trail)
		}
	}
	return out, nil
}

func (f *fakeTrailRepo) Update(_ context.Context, trail *model.Trail) error {
	f.updateCalls++
	f.records[trail.ID] = *trail
	return nil
}

func (f *fakeTrailRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeUserLookup struct {
	ids   map[string]bool
	calls int
}

func (f *fakeUserLookup) Exists(_ context.Context, id string) (bool, error) {
	f.calls++
	return f.ids[id], nil
}

func strPtr(s string) *string      { return &s }
func floatPtr(v float64) *float64  { return &v }
func tagsPtr(t []string) *[]string { return &t }
func coordsPtr(lat, lon float64) *model.Coordinates {
	return &model.Coordinates{DD: model.DD{Lat: lat, Lon: lon}}
}

func validInput() TrailInput {
	return TrailInput{
		Title:       strPtr("Lago di Tovel loop"),
		Region:      strPtr("Trentino"),
		Valley:      strPtr("Val di Non"),
		LengthKm:    floatPtr(9.5),
		Tags:        tagsPtr([]string{"scenic", "round_trip"}),
		Coordinates: coordsPtr(46.26, 10.95),
		OwnerID:     strPtr("admin-1"),
	}
}

func newTestService(repo *fakeTrailRepo, users *fakeUserLookup) *TrailService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewTrailService(repo, validation.NewTrailValidator(users), logger)
}

func TestCreate_AssignsIDAndDefaults(t *testing.T) {
	repo := newFakeTrailRepo()
	svc := newTestService(repo, &fakeUserLookup{ids: map[string]bool{"admin-1": true}})

	trail, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uuid.Parse(trail.ID)
	require.NoError(t, err, "id should be a generated uuid")
	require.Equal(t, model.DifficultyEasy, trail.Difficulty)
	require.Equal(t, model.Duration{Hours: 0, Minutes: 0}, trail.Duration)
	require.Equal(t, []float64{10.95, 46.26}, trail.Location.Coordinates)
	require.Equal(t, 1, repo.createCalls)
}

func TestCreate_DanglingOwnerPersistsNothing(t *testing.T) {
	repo := newFakeTrailRepo()
	svc := newTestService(repo, &fakeUserLookup{ids: map[string]bool{}})

	_, err := svc.Create(context.Background(), validInput())
	require.ErrorIs(t, err, errs.ErrReference)
	require.Zero(t, repo.createCalls)

	trails, err := svc.List(context.Background(), repository.TrailFilter{})
	require.NoError(t, err)
	require.Empty(t, trails)
}

func TestCreate_MissingCoordinatesRejected(t *testing.T) {
	repo := newFakeTrailRepo()
	svc := newTestService(repo, &fakeUserLookup{ids: map[string]bool{"admin-1": true}})

	in := validInput()
	in.Coordinates = nil

	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Contains(t, err.Error(), "coordinates.DD")
	require.Zero(t, repo.createCalls)
}

func TestUpdate_MergesAndRevalidates(t *testing.T) {
	repo := newFakeTrailRepo()
	users := &fakeUserLookup{ids: map[string]bool{"admin-1": true}}
	svc := newTestService(repo, users)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	callsAfterCreate := users.calls

	updated, err := svc.Update(context.Background(), created.ID, TrailInput{
		Valley:      strPtr("Val di Sole"),
		Coordinates: coordsPtr(46.30, 10.70),
	})
	require.NoError(t, err)

	// Absent fields keep their stored values; present ones are replaced.
	require.Equal(t, created.Title, updated.Title)
	require.Equal(t, "Val di Sole", updated.Valley)
	// Location is re-derived from the new decimal degrees.
	require.Equal(t, []float64{10.70, 46.30}, updated.Location.Coordinates)
	// The owner reference is re-checked on update, not only on insert.
	require.Greater(t, users.calls, callsAfterCreate)
	require.Equal(t, 1, repo.updateCalls)
}

func TestUpdate_InvalidMergeLeavesStoreUntouched(t *testing.T) {
	repo := newFakeTrailRepo()
	svc := newTestService(repo, &fakeUserLookup{ids: map[string]bool{"admin-1": true}})

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, TrailInput{
		Duration: &model.Duration{Hours: 1, Minutes: 90},
	})
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Zero(t, repo.updateCalls)

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, model.Duration{Hours: 0, Minutes: 0}, stored.Duration)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(newFakeTrailRepo(), &fakeUserLookup{ids: map[string]bool{"admin-1": true}})

	_, err := svc.Update(context.Background(), uuid.New().String(), TrailInput{Valley: strPtr("x")})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeTrailRepo()
	svc := newTestService(repo, &fakeUserLookup{ids: map[string]bool{"admin-1": true}})

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), errs.ErrNotFound)
}

func TestFindNear_RadiusContainment(t *testing.T) {
	repo := newFakeTrailRepo()
	users := &fakeUserLookup{ids: map[string]bool{"admin-1": true}}
	svc := newTestService(repo, users)

	in := validInput()
	in.Coordinates = coordsPtr(46.0, 11.0)
	created, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	near, err := svc.FindNear(context.Background(), 46.0, 11.0, 1)
	require.NoError(t, err)
	require.Len(t, near, 1)
	require.Equal(t, created.ID, near[0].ID)

	// ~500 km away, 1 km radius: nothing.
	far, err := svc.FindNear(context.Background(), 50.5, 11.0, 1)
	require.NoError(t, err)
	require.Empty(t, far)
}

func TestFindNear_InvalidParameters(t *testing.T) {
	svc := newTestService(newFakeTrailRepo(), &fakeUserLookup{})

	_, err := svc.FindNear(context.Background(), 95, 11, 1)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.FindNear(context.Background(), 46, 11, -2)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.FindNear(context.Background(), 46, 11, 0)
	require.ErrorIs(t, err, errs.ErrValidation)
}
