// Package validation is the single write gate for trail records: every insert
// and update passes through TrailValidator before the store is touched.
package validation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"trail-catalog-go/internal/errs"
	"trail-catalog-go/internal/geo"
	"trail-catalog-go/internal/model"
)

// Lookup resolves whether an entity with the given identifier exists. The
// validator depends on this capability, not on a concrete store.
type Lookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// CheckReference verifies that a foreign identifier resolves to an existing
// entity. The lookup hits the store on every call; results are never cached.
func CheckReference(ctx context.Context, kind, id string, store Lookup) error {
	ok, err := store.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("%s lookup: %w", kind, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %q", errs.ErrReference, kind, id)
	}
	return nil
}

// NormalizeTags trims whitespace, drops blank entries and removes duplicates,
// keeping the first occurrence. Vocabulary membership is checked separately by
// the rule table; an unknown tag rejects the write rather than being dropped.
func NormalizeTags(tags []string) model.StringSlice {
	normalized := make(model.StringSlice, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

// rule is one field constraint; check returns a problem description or "".
type rule struct {
	field string
	check func(t *model.Trail) string
}

// trailRules is the declarative constraint table consumed by Validate.
var trailRules = []rule{
	{"title", func(t *model.Trail) string { return required(t.Title) }},
	{"region", func(t *model.Trail) string { return required(t.Region) }},
	{"valley", func(t *model.Trail) string { return required(t.Valley) }},
	{"ownerRef", func(t *model.Trail) string { return required(t.OwnerID) }},
	{"difficulty", func(t *model.Trail) string {
		if !t.Difficulty.Valid() {
			return fmt.Sprintf("%q is not one of Easy, Medium, Difficult", t.Difficulty)
		}
		return ""
	}},
	{"lengthKm", func(t *model.Trail) string {
		if t.LengthKm < 0 {
			return "must not be negative"
		}
		return ""
	}},
	{"duration.hours", func(t *model.Trail) string {
		if t.Duration.Hours < 0 {
			return "must not be negative"
		}
		return ""
	}},
	{"duration.minutes", func(t *model.Trail) string {
		// Overflow such as 90 minutes is a caller error, not auto-carried into hours.
		if t.Duration.Minutes < 0 || t.Duration.Minutes > 59 {
			return "must be between 0 and 59"
		}
		return ""
	}},
	{"coordinates.DD.lat", func(t *model.Trail) string {
		lat := t.Coordinates.DD.Lat
		if math.IsNaN(lat) || math.IsInf(lat, 0) {
			return "is required and must be a finite number"
		}
		if lat < -90 || lat > 90 {
			return "must be within [-90, 90]"
		}
		return ""
	}},
	{"coordinates.DD.lon", func(t *model.Trail) string {
		lon := t.Coordinates.DD.Lon
		if math.IsNaN(lon) || math.IsInf(lon, 0) {
			return "is required and must be a finite number"
		}
		if lon < -180 || lon > 180 {
			return "must be within [-180, 180]"
		}
		return ""
	}},
	{"tags", func(t *model.Trail) string {
		for _, tag := range t.Tags {
			if !model.KnownTag(tag) {
				return fmt.Sprintf("%q is not in the tag vocabulary", tag)
			}
		}
		return ""
	}},
}

func required(s string) string {
	if strings.TrimSpace(s) == "" {
		return "is required"
	}
	return ""
}

// TrailValidator gates every trail write.
type TrailValidator struct {
	users Lookup
}

// NewTrailValidator creates a validator backed by the given user lookup.
func NewTrailValidator(users Lookup) *TrailValidator {
	return &TrailValidator{users: users}
}

// Validate normalizes and checks a trail record in place. Order: sign coercion
// and tag normalization, then the rule table (all field failures aggregated
// into a single ErrValidation), then the owner reference check (ErrReference),
// then derivation of the canonical location from coordinates.DD. Only the
// in-memory record is mutated; a failed gate guarantees zero store mutation.
func (v *TrailValidator) Validate(ctx context.Context, t *model.Trail) error {
	t.AscentM = math.Abs(t.AscentM)
	t.DescentM = math.Abs(t.DescentM)
	t.Tags = NormalizeTags(t.Tags)

	var problems []string
	for _, r := range trailRules {
		if msg := r.check(t); msg != "" {
			problems = append(problems, r.field+" "+msg)
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(problems, "; "))
	}

	if err := CheckReference(ctx, "user", t.OwnerID, v.users); err != nil {
		return err
	}

	coords, err := geo.NormalizePoint(t.Coordinates.DD.Lat, t.Coordinates.DD.Lon)
	if err != nil {
		return err
	}
	t.Location = model.GeoPoint{Type: "Point", Coordinates: coords}
	return nil
}
