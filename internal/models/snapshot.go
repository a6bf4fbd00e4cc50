package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is the persisted wire form of one workout. Exactly one of
// CadenceSpm/ElevationGainM is present, matching Type.
type Snapshot struct {
	ID             string     `json:"id"`
	CreatedAt      time.Time  `json:"createdAt"`
	Type           Type       `json:"type"`
	Position       [2]float64 `json:"position"` // [lat, lng]
	DistanceKm     float64    `json:"distanceKm"`
	DurationMin    float64    `json:"durationMin"`
	Description    string     `json:"description"`
	Interactions   int        `json:"interactionCount"`
	CadenceSpm     *float64   `json:"cadenceSpm,omitempty"`
	ElevationGainM *float64   `json:"elevationGainM,omitempty"`
}

// ToSnapshot converts a workout to its wire form, derived fields included.
func (w *Workout) ToSnapshot() Snapshot {
	s := Snapshot{
		ID:           w.ID,
		CreatedAt:    w.CreatedAt,
		Type:         w.Type,
		Position:     [2]float64{w.Position.Lat, w.Position.Lng},
		DistanceKm:   w.DistanceKm,
		DurationMin:  w.DurationMin,
		Description:  w.Description,
		Interactions: w.Interactions,
	}
	switch w.Type {
	case TypeRunning:
		c := w.Running.CadenceSpm
		s.CadenceSpm = &c
	case TypeCycling:
		e := w.Cycling.ElevationGainM
		s.ElevationGainM = &e
	}
	return s
}

// Restore rebuilds a workout from its persisted form. The id and creation
// time are taken verbatim; the description is always recomputed rather than
// trusted from storage, since the stored string may be stale. Metrics are
// re-validated so a corrupt snapshot cannot smuggle in an invalid record.
func Restore(s Snapshot) (*Workout, error) {
	if s.ID == "" {
		return nil, &ValidationError{Field: "id", Err: fmt.Errorf("missing")}
	}
	m := metrics{distance: s.DistanceKm, duration: s.DurationMin}
	switch s.Type {
	case TypeRunning:
		if s.CadenceSpm == nil {
			return nil, &ValidationError{Field: "cadence", Err: ErrNonFinite}
		}
		m.extra = *s.CadenceSpm
	case TypeCycling:
		if s.ElevationGainM == nil {
			return nil, &ValidationError{Field: "elevation", Err: ErrNonFinite}
		}
		m.extra = *s.ElevationGainM
	default:
		return nil, &ValidationError{Field: "type", Err: ErrUnknownType}
	}
	if err := m.validate(s.Type); err != nil {
		return nil, err
	}
	w := &Workout{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		Type:         s.Type,
		Position:     Position{Lat: s.Position[0], Lng: s.Position[1]},
		Interactions: s.Interactions,
	}
	w.apply(m)
	return w, nil
}

// EncodeSnapshots serializes workouts, in order, to the persisted JSON form.
func EncodeSnapshots(ws []*Workout) ([]byte, error) {
	snaps := make([]Snapshot, 0, len(ws))
	for _, w := range ws {
		snaps = append(snaps, w.ToSnapshot())
	}
	return json.Marshal(snaps)
}

// DecodeSnapshots parses the persisted JSON form back into workouts,
// preserving stored order, ids and creation dates.
func DecodeSnapshots(data []byte) ([]*Workout, error) {
	var snaps []Snapshot
	if err := json.Unmarshal(data, &snaps); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	ws := make([]*Workout, 0, len(snaps))
	for _, s := range snaps {
		w, err := Restore(s)
		if err != nil {
			return nil, fmt.Errorf("restoring workout %q: %w", s.ID, err)
		}
		ws = append(ws, w)
	}
	return ws, nil
}
