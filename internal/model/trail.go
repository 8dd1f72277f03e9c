package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Difficulty classifies how demanding a trail is.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "Easy"
	DifficultyMedium    Difficulty = "Medium"
	DifficultyDifficult Difficulty = "Difficult"
)

// Valid reports whether the difficulty is one of the allowed values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyDifficult:
		return true
	}
	return false
}

// TagVocabulary is the closed set of labels a trail may carry.
var TagVocabulary = []string{
	"linear_route", "scenic", "geological_highlights", "fauna", "healthy_climate",
	"round_trip", "cultural/historical_interest", "flora", "out_and_back",
	"refreshment_stops_available", "family-friendly", "multi-stage_route",
	"summit_route", "exposed_sections", "insider_tip", "ridge",
	"cableway_ascent/descent", "suitable_for_strollers", "secured_passages",
	"dog-friendly", "accessibility", "scrambling_required",
}

var tagVocabularySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(TagVocabulary))
	for _, tag := range TagVocabulary {
		set[tag] = struct{}{}
	}
	return set
}()

// KnownTag reports whether the tag belongs to the vocabulary. Matching is case-sensitive.
func KnownTag(tag string) bool {
	_, ok := tagVocabularySet[tag]
	return ok
}

// Duration is a walking time split into hours and minutes (minutes stay within 0-59).
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// TotalMinutes returns the duration flattened to minutes for range comparisons.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// DD is a decimal-degree coordinate pair, the authoritative representation.
type DD struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DMS is an optional degrees-minutes-seconds rendering; never validated against DD.
type DMS struct {
	Lat string `json:"lat,omitempty"`
	Lon string `json:"lon,omitempty"`
}

// UTM is an optional Universal Transverse Mercator rendering; never validated against DD.
type UTM struct {
	Zone     string  `json:"zone,omitempty"`
	Easting  float64 `json:"easting,omitempty"`
	Northing float64 `json:"northing,omitempty"`
}

// Coordinates groups the alternate representations of the trailhead position.
type Coordinates struct {
	DD  DD  `gorm:"embedded;embeddedPrefix:dd_" json:"DD"`
	DMS DMS `gorm:"embedded;embeddedPrefix:dms_" json:"DMS"`
	UTM UTM `gorm:"embedded;embeddedPrefix:utm_" json:"UTM"`
}

// Trail is a catalogued hiking route.
type Trail struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Region      string     `gorm:"type:varchar(255);not null;index" json:"region"`
	Valley      string     `gorm:"type:varchar(255);not null;index" json:"valley"`
	Difficulty  Difficulty `gorm:"type:varchar(16);not null;index" json:"difficulty"`
	LengthKm    float64    `gorm:"not null;default:0;index" json:"lengthKm"`
	Duration    Duration   `gorm:"embedded;embeddedPrefix:duration_" json:"duration"`

	Roadbook   string `gorm:"type:text" json:"roadbook"`
	Directions string `gorm:"type:text" json:"directions"`
	Parking    string `gorm:"type:text" json:"parking"`

	AscentM       float64 `gorm:"not null;default:0" json:"ascentM"`
	DescentM      float64 `gorm:"not null;default:0" json:"descentM"`
	HighestPointM float64 `gorm:"not null;default:0" json:"highestPointM"`
	LowestPointM  float64 `gorm:"not null;default:0" json:"lowestPointM"`

	Tags        StringSlice `gorm:"type:json" json:"tags"`
	Coordinates Coordinates `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates"`

	// Location is the canonical GeoJSON point derived from Coordinates.DD on every
	// write; it is never accepted from the caller and backs all radius queries.
	Location GeoPoint `gorm:"type:json" json:"location"`

	// OwnerID references the administrator that created the trail. It must resolve
	// to an existing user at write time; it is not re-checked afterwards.
	OwnerID string `gorm:"type:varchar(36);not null;index" json:"ownerRef"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName sets the table name for Trail.
func (Trail) TableName() string {
	return "trails"
}

// GeoPoint is a GeoJSON point with coordinates ordered [lon, lat].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Value implements driver.Valuer for JSON column storage.
func (p GeoPoint) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSON column retrieval.
func (p *GeoPoint) Scan(value interface{}) error {
	if value == nil {
		*p = GeoPoint{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into GeoPoint", value)
	}
}

// StringSlice stores a list of strings as a JSON column.
type StringSlice []string

// Value implements driver.Valuer for JSON column storage.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSON column retrieval.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}
