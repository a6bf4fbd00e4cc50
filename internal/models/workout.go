// Package models defines the workout record model: a tagged variant with
// shared metrics, per-variant payloads, and derived display fields.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Type tags the two workout variants.
type Type string

const (
	TypeRunning Type = "running"
	TypeCycling Type = "cycling"
)

// Valid reports whether t names a known workout variant.
func (t Type) Valid() bool {
	return t == TypeRunning || t == TypeCycling
}

// Position is a latitude/longitude pair. It is fixed at creation and never
// changes, even across edits.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RunningMetrics is the Running variant payload.
type RunningMetrics struct {
	CadenceSpm   float64
	PaceMinPerKm float64
}

// CyclingMetrics is the Cycling variant payload.
type CyclingMetrics struct {
	ElevationGainM float64
	SpeedKmPerH    float64
}

// Workout is a single recorded workout. Exactly one of Running/Cycling is
// non-nil, matching Type. Derived fields (pace/speed, Description) are
// recomputed on every construction and never go stale after a mutation.
type Workout struct {
	ID           string
	CreatedAt    time.Time
	Type         Type
	Position     Position
	DistanceKm   float64
	DurationMin  float64
	Description  string
	Interactions int

	Running *RunningMetrics
	Cycling *CyclingMetrics
}

// RecordInteraction bumps the selection counter.
func (w *Workout) RecordInteraction() {
	w.Interactions++
}

// Describe returns the display description for a workout of the given type
// created at the given time, e.g. "Running on April 14".
func Describe(t Type, at time.Time) string {
	name := string(t)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s on %s %d", name, at.Month().String(), at.Day())
}

// apply sets the metric fields and recomputes every derived value. The
// variant payload is rebuilt from scratch so a type change never leaves the
// old payload behind.
func (w *Workout) apply(m metrics) {
	w.DistanceKm = m.distance
	w.DurationMin = m.duration
	w.Running, w.Cycling = nil, nil
	switch w.Type {
	case TypeRunning:
		w.Running = &RunningMetrics{
			CadenceSpm:   m.extra,
			PaceMinPerKm: m.duration / m.distance,
		}
	case TypeCycling:
		w.Cycling = &CyclingMetrics{
			ElevationGainM: m.extra,
			SpeedKmPerH:    m.distance / (m.duration / 60),
		}
	}
	w.Description = Describe(w.Type, w.CreatedAt)
}
