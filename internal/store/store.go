// Package store holds the in-memory workout collection, the single source
// of truth that every dependent view is derived from.
package store

import (
	"errors"
	"fmt"

	"github.com/meltforce/waytrack/internal/models"
)

var (
	// ErrNotFound means no stored workout has the requested id. Operations
	// coming off the UI surface should never hit this; it signals a broken
	// invariant, not a user mistake.
	ErrNotFound = errors.New("workout not found")
	// ErrDuplicateID means an Add collided with an existing id.
	ErrDuplicateID = errors.New("duplicate workout id")
)

// Store is an ordered collection of workouts. Insertion order is creation
// order and survives reloads; edits replace in place without reordering.
// Linear scans are fine at the collection sizes a single user produces.
//
// Store is not safe for concurrent use; the application serializes
// operations above it.
type Store struct {
	workouts []*models.Workout
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a workout. Ids must be unique within the store.
func (s *Store) Add(w *models.Workout) error {
	if _, err := s.indexOf(w.ID); err == nil {
		return fmt.Errorf("adding workout %q: %w", w.ID, ErrDuplicateID)
	}
	s.workouts = append(s.workouts, w)
	return nil
}

// Get returns the workout with the given id.
func (s *Store) Get(id string) (*models.Workout, error) {
	i, err := s.indexOf(id)
	if err != nil {
		return nil, err
	}
	return s.workouts[i], nil
}

// Replace overwrites the workout with the given id, preserving its position
// in the sequence.
func (s *Store) Replace(id string, w *models.Workout) error {
	i, err := s.indexOf(id)
	if err != nil {
		return err
	}
	s.workouts[i] = w
	return nil
}

// Remove deletes the workout with the given id.
func (s *Store) Remove(id string) error {
	i, err := s.indexOf(id)
	if err != nil {
		return err
	}
	s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
	return nil
}

// Clear empties the collection unconditionally.
func (s *Store) Clear() {
	s.workouts = nil
}

// All returns the workouts in insertion order. The slice is a copy; the
// records themselves are shared and must not be held across operations.
func (s *Store) All() []*models.Workout {
	out := make([]*models.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// Len returns the number of stored workouts.
func (s *Store) Len() int {
	return len(s.workouts)
}

func (s *Store) indexOf(id string) (int, error) {
	for i, w := range s.workouts {
		if w.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("workout %q: %w", id, ErrNotFound)
}
