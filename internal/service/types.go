package service

import "trail-catalog-go/internal/model"

// TrailInput carries a create or partial-update payload. Pointer fields
// distinguish "absent" from zero values: on update, nil fields keep the
// stored value; on create they fall back to defaults before validation.
type TrailInput struct {
	Title         *string            `json:"title"`
	Description   *string            `json:"description"`
	Region        *string            `json:"region"`
	Valley        *string            `json:"valley"`
	Difficulty    *string            `json:"difficulty"`
	LengthKm      *float64           `json:"lengthKm"`
	Duration      *model.Duration    `json:"duration"`
	Roadbook      *string            `json:"roadbook"`
	Directions    *string            `json:"directions"`
	Parking       *string            `json:"parking"`
	AscentM       *float64           `json:"ascentM"`
	DescentM      *float64           `json:"descentM"`
	HighestPointM *float64           `json:"highestPointM"`
	LowestPointM  *float64           `json:"lowestPointM"`
	Tags          *[]string          `json:"tags"`
	Coordinates   *model.Coordinates `json:"coordinates"`
	OwnerID       *string            `json:"ownerRef"`
}

// apply copies the present fields onto the trail. The caller revalidates the
// merged record; location is always re-derived by the gate, never taken here.
func (in TrailInput) apply(t *model.Trail) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Region != nil {
		t.Region = *in.Region
	}
	if in.Valley != nil {
		t.Valley = *in.Valley
	}
	if in.Difficulty != nil {
		t.Difficulty = model.Difficulty(*in.Difficulty)
	}
	if in.LengthKm != nil {
		t.LengthKm = *in.LengthKm
	}
	if in.Duration != nil {
		t.Duration = *in.Duration
	}
	if in.Roadbook != nil {
		t.Roadbook = *in.Roadbook
	}
	if in.Directions != nil {
		t.Directions = *in.Directions
	}
	if in.Parking != nil {
		t.Parking = *in.Parking
	}
	if in.AscentM != nil {
		t.AscentM = *in.AscentM
	}
	if in.DescentM != nil {
		t.DescentM = *in.DescentM
	}
	if in.HighestPointM != nil {
		t.HighestPointM = *in.HighestPointM
	}
	if in.LowestPointM != nil {
		t.LowestPointM = *in.LowestPointM
	}
	if in.Tags != nil {
		t.Tags = model.StringSlice(*in.Tags)
	}
	if in.Coordinates != nil {
		t.Coordinates = *in.Coordinates
	}
	if in.OwnerID != nil {
		t.OwnerID = *in.OwnerID
	}
}

// ListTrailsResponse is the wire shape for list and radius queries.
type ListTrailsResponse struct {
	Trails []model.Trail `json:"trails"`
	Total  int           `json:"total"`
}
