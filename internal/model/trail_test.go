package model

import (
	"encoding/json"
	"testing"
)

func TestTagVocabulary(t *testing.T) {
	if len(TagVocabulary) != 22 {
		t.Fatalf("vocabulary should hold 22 values, got %d", len(TagVocabulary))
	}
	if !KnownTag("scenic") || !KnownTag("cableway_ascent/descent") {
		t.Fatal("expected vocabulary entries missing")
	}
	if KnownTag("Scenic") {
		t.Fatal("matching must be case-sensitive")
	}
}

func TestDurationTotalMinutes(t *testing.T) {
	if got := (Duration{Hours: 1, Minutes: 30}).TotalMinutes(); got != 90 {
		t.Fatalf("want 90, got %d", got)
	}
	if got := (Duration{}).TotalMinutes(); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
}

func TestTrailWireShape(t *testing.T) {
	trail := Trail{
		ID:       "abc",
		Title:    "Cima Brenta",
		OwnerID:  "admin-1",
		Duration: Duration{Hours: 2, Minutes: 15},
		Coordinates: Coordinates{
			DD: DD{Lat: 46.17, Lon: 10.88},
		},
		Location: GeoPoint{Type: "Point", Coordinates: []float64{10.88, 46.17}},
	}

	raw, err := json.Marshal(trail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// The owner reference serializes under its wire name, not the Go field name.
	if decoded["ownerRef"] != "admin-1" {
		t.Fatalf("ownerRef missing or wrong: %v", decoded["ownerRef"])
	}
	duration, ok := decoded["duration"].(map[string]interface{})
	if !ok || duration["hours"].(float64) != 2 {
		t.Fatalf("duration not nested: %v", decoded["duration"])
	}
	coords, ok := decoded["coordinates"].(map[string]interface{})
	if !ok {
		t.Fatalf("coordinates not nested: %v", decoded["coordinates"])
	}
	if _, ok := coords["DD"]; !ok {
		t.Fatal("coordinates.DD missing")
	}
}
