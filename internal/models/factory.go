package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNonFinite marks input that does not parse to a finite number.
	ErrNonFinite = errors.New("value is not a finite number")
	// ErrNonPositive marks a value that must be strictly positive.
	ErrNonPositive = errors.New("value must be positive")
	// ErrUnknownType marks an unrecognized workout type tag.
	ErrUnknownType = errors.New("unknown workout type")
)

// ValidationError reports which form field failed validation and why.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Input carries the raw form values of a create or edit submission. Numeric
// fields arrive as strings straight off the input surface; parsing and
// validation happen here, not at the transport.
type Input struct {
	Type     Type
	Distance string // km
	Duration string // min
	Extra    string // cadence in spm (running) or elevation gain in m (cycling)
	Position Position
}

// metrics holds parsed numeric input ready for construction.
type metrics struct {
	distance, duration, extra float64
}

// validate enforces the metric invariants for the given variant. Distance
// and duration must be finite and positive. Running cadence must be finite
// and positive; cycling elevation gain is checked for finiteness only, so
// zero or negative gain is accepted.
func (m metrics) validate(t Type) error {
	if err := checkPositive("distance", m.distance); err != nil {
		return err
	}
	if err := checkPositive("duration", m.duration); err != nil {
		return err
	}
	switch t {
	case TypeRunning:
		return checkPositive("cadence", m.extra)
	case TypeCycling:
		return checkFinite("elevation", m.extra)
	}
	return &ValidationError{Field: "type", Err: ErrUnknownType}
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Err: ErrNonFinite}
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &ValidationError{Field: field, Err: ErrNonPositive}
	}
	return nil
}

func parseField(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Err: ErrNonFinite}
	}
	return v, nil
}

func parseMetrics(in Input) (metrics, error) {
	var m metrics
	if !in.Type.Valid() {
		return m, &ValidationError{Field: "type", Err: ErrUnknownType}
	}
	var err error
	if m.distance, err = parseField("distance", in.Distance); err != nil {
		return m, err
	}
	if m.duration, err = parseField("duration", in.Duration); err != nil {
		return m, err
	}
	field := "cadence"
	if in.Type == TypeCycling {
		field = "elevation"
	}
	if m.extra, err = parseField(field, in.Extra); err != nil {
		return m, err
	}
	return m, m.validate(in.Type)
}

// New validates raw input and constructs a workout of the matching variant
// with a fresh id and creation time. Construction is pure: no view or
// storage side effects.
func New(in Input, now time.Time) (*Workout, error) {
	m, err := parseMetrics(in)
	if err != nil {
		return nil, err
	}
	w := &Workout{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Type:      in.Type,
		Position:  in.Position,
	}
	w.apply(m)
	return w, nil
}

// Edited builds the replacement record for an edit commit. Validation and
// derived-field rules match New, but the id, creation time, position and
// interaction counter carry over from prev. The variant may change.
func Edited(prev *Workout, in Input) (*Workout, error) {
	m, err := parseMetrics(in)
	if err != nil {
		return nil, err
	}
	w := &Workout{
		ID:           prev.ID,
		CreatedAt:    prev.CreatedAt,
		Type:         in.Type,
		Position:     prev.Position,
		Interactions: prev.Interactions,
	}
	w.apply(m)
	return w, nil
}
