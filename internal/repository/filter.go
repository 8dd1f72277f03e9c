package repository

import "trail-catalog-go/internal/model"

// TrailFilter is a set of independently optional query parameters. Each present
// parameter contributes one conjunctive clause; an empty filter matches every trail.
type TrailFilter struct {
	ID          string
	Region      string
	Valley      string
	Difficulty  string
	MinLength   *float64
	MaxLength   *float64
	MinDuration *int // total minutes, compared against hours*60+minutes
	MaxDuration *int
	Tags        []string // superset match: every requested tag must be present
}

// Matches is the authoritative predicate for the filter. SQL clauses only
// narrow the candidate set; every returned row passes through here.
func (f TrailFilter) Matches(t *model.Trail) bool {
	if f.ID != "" && t.ID != f.ID {
		return false
	}
	if f.Region != "" && t.Region != f.Region {
		return false
	}
	if f.Valley != "" && t.Valley != f.Valley {
		return false
	}
	if f.Difficulty != "" && string(t.Difficulty) != f.Difficulty {
		return false
	}
	if f.MinLength != nil && t.LengthKm < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && t.LengthKm > *f.MaxLength {
		return false
	}
	total := t.Duration.TotalMinutes()
	if f.MinDuration != nil && total < *f.MinDuration {
		return false
	}
	if f.MaxDuration != nil && total > *f.MaxDuration {
		return false
	}
	for _, want := range f.Tags {
		if !hasTag(t.Tags, want) {
			return false
		}
	}
	return true
}

func hasTag(tags model.StringSlice, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
