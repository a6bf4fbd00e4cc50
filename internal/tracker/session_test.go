package tracker

import (
	"testing"
	"time"

	"github.com/meltforce/waytrack/internal/models"
)

var testTime = time.Date(2024, time.April, 14, 12, 0, 0, 0, time.UTC)

func newRunning(t *testing.T) *models.Workout {
	t.Helper()
	w, err := models.New(models.Input{
		Type:     models.TypeRunning,
		Distance: "5.2",
		Duration: "25",
		Extra:    "150",
		Position: models.Position{Lat: 10, Lng: 20},
	}, testTime)
	if err != nil {
		t.Fatalf("building running workout: %v", err)
	}
	return w
}

func newCycling(t *testing.T) *models.Workout {
	t.Helper()
	w, err := models.New(models.Input{
		Type:     models.TypeCycling,
		Distance: "20",
		Duration: "60",
		Extra:    "100",
		Position: models.Position{Lat: 11, Lng: 21},
	}, testTime)
	if err != nil {
		t.Fatalf("building cycling workout: %v", err)
	}
	return w
}

// TestSessionBeginCapturesRunningValues verifies the prefill for a running
// record carries cadence and no elevation.
func TestSessionBeginCapturesRunningValues(t *testing.T) {
	var s EditSession
	w := newRunning(t)

	p := s.Begin(w)

	if !s.Active() {
		t.Fatal("session not active after Begin")
	}
	if s.TargetID() != w.ID {
		t.Errorf("target = %q, want %q", s.TargetID(), w.ID)
	}
	if p.Type != models.TypeRunning {
		t.Errorf("type = %q, want running", p.Type)
	}
	if p.Distance != "5.2" || p.Duration != "25" {
		t.Errorf("distance/duration = %q/%q, want 5.2/25", p.Distance, p.Duration)
	}
	if p.Cadence != "150" {
		t.Errorf("cadence = %q, want 150", p.Cadence)
	}
	if p.Elevation != "" {
		t.Errorf("elevation = %q, want empty for a running record", p.Elevation)
	}
}

// TestSessionBeginCapturesCyclingValues verifies the prefill for a cycling
// record carries elevation and no cadence.
func TestSessionBeginCapturesCyclingValues(t *testing.T) {
	var s EditSession
	p := s.Begin(newCycling(t))

	if p.Elevation != "100" {
		t.Errorf("elevation = %q, want 100", p.Elevation)
	}
	if p.Cadence != "" {
		t.Errorf("cadence = %q, want empty for a cycling record", p.Cadence)
	}
}

// TestSessionRetarget verifies beginning a second edit replaces the first
// without needing an End in between.
func TestSessionRetarget(t *testing.T) {
	var s EditSession
	first := newRunning(t)
	second := newCycling(t)

	s.Begin(first)
	s.Begin(second)

	if s.TargetID() != second.ID {
		t.Errorf("target = %q, want %q", s.TargetID(), second.ID)
	}
	if s.Prior().Type != models.TypeCycling {
		t.Errorf("prior type = %q, want cycling", s.Prior().Type)
	}
}

// TestSessionEnd verifies End returns the session to the idle state.
func TestSessionEnd(t *testing.T) {
	var s EditSession
	s.Begin(newRunning(t))
	s.End()

	if s.Active() {
		t.Error("session still active after End")
	}
	if s.TargetID() != "" {
		t.Errorf("target = %q, want empty when idle", s.TargetID())
	}
}
