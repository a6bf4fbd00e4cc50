package tracker

import (
	"errors"
	"strconv"

	"github.com/meltforce/waytrack/internal/models"
)

var (
	// ErrEditInProgress rejects create submissions while an edit session
	// is active. The submission is dropped, not queued.
	ErrEditInProgress = errors.New("edit session in progress")
	// ErrNoEditSession rejects commit and cancel requests when nothing is
	// being edited.
	ErrNoEditSession = errors.New("no edit session active")
)

// Prefill carries a record's current values, keyed by field name, for
// populating the edit form. Only the field matching the variant is set.
type Prefill struct {
	Type      models.Type `json:"type"`
	Distance  string      `json:"distance"`
	Duration  string      `json:"duration"`
	Cadence   string      `json:"cadence,omitempty"`
	Elevation string      `json:"elevation,omitempty"`
}

// EditSession tracks the one workout currently being edited. It is pure UI
// transaction state: never persisted, idle between operations, and mutually
// exclusive with create submissions.
type EditSession struct {
	targetID string
	prior    Prefill
	active   bool
}

// Active reports whether an edit is in flight.
func (s *EditSession) Active() bool {
	return s.active
}

// TargetID returns the id of the record under edit, or "" when idle.
func (s *EditSession) TargetID() string {
	if !s.active {
		return ""
	}
	return s.targetID
}

// Prior returns the field values captured when the session began.
func (s *EditSession) Prior() Prefill {
	return s.prior
}

// Begin enters editing state for w and captures its current values. The
// store is not touched. Beginning again simply retargets the session.
func (s *EditSession) Begin(w *models.Workout) Prefill {
	p := Prefill{
		Type:     w.Type,
		Distance: formatMetric(w.DistanceKm),
		Duration: formatMetric(w.DurationMin),
	}
	switch w.Type {
	case models.TypeRunning:
		p.Cadence = formatMetric(w.Running.CadenceSpm)
	case models.TypeCycling:
		p.Elevation = formatMetric(w.Cycling.ElevationGainM)
	}
	s.targetID, s.prior, s.active = w.ID, p, true
	return p
}

// End returns the session to idle, discarding captured state.
func (s *EditSession) End() {
	*s = EditSession{}
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
