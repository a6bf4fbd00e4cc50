package models

import (
	"testing"
	"time"
)

// TestDescribe verifies the description format: capitalized type, month
// name, day of month.
func TestDescribe(t *testing.T) {
	cases := []struct {
		typ  Type
		at   time.Time
		want string
	}{
		{TypeRunning, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Running on January 2"},
		{TypeCycling, time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), "Cycling on December 31"},
	}
	for _, tc := range cases {
		if got := Describe(tc.typ, tc.at); got != tc.want {
			t.Errorf("Describe(%q, %v) = %q, want %q", tc.typ, tc.at, got, tc.want)
		}
	}
}

// TestRecordInteraction verifies the selection counter starts at zero and
// increments per call.
func TestRecordInteraction(t *testing.T) {
	w, err := New(runningInput(), testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.RecordInteraction()
	w.RecordInteraction()
	if w.Interactions != 2 {
		t.Errorf("interactions = %d, want 2", w.Interactions)
	}
}

// TestTypeValid verifies the known variant tags.
func TestTypeValid(t *testing.T) {
	if !TypeRunning.Valid() || !TypeCycling.Valid() {
		t.Error("running and cycling must be valid types")
	}
	if Type("rowing").Valid() {
		t.Error("rowing must not be a valid type")
	}
}
