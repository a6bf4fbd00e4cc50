package store

import (
	"errors"
	"testing"
	"time"

	"github.com/meltforce/waytrack/internal/models"
)

func newWorkout(t *testing.T, id string) *models.Workout {
	t.Helper()
	w, err := models.New(models.Input{
		Type:     models.TypeRunning,
		Distance: "5",
		Duration: "25",
		Extra:    "150",
	}, time.Date(2024, time.April, 14, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("building workout: %v", err)
	}
	if id != "" {
		w.ID = id
	}
	return w
}

// TestAddAndGet verifies workouts are retrievable by id after insertion.
func TestAddAndGet(t *testing.T) {
	s := New()
	w := newWorkout(t, "a")
	if err := s.Add(w); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != w {
		t.Error("got a different record than was added")
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

// TestAddRejectsDuplicateID verifies id uniqueness within the store.
func TestAddRejectsDuplicateID(t *testing.T) {
	s := New()
	if err := s.Add(newWorkout(t, "a")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(newWorkout(t, "a")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1 after rejected add", s.Len())
	}
}

// TestGetUnknownID verifies lookups of absent ids report ErrNotFound.
func TestGetUnknownID(t *testing.T) {
	s := New()
	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// TestReplaceKeepsPosition verifies an edit lands in the same slot of the
// sequence instead of moving the record to the end.
func TestReplaceKeepsPosition(t *testing.T) {
	s := New()
	for _, id := range []string{"a", "b", "c"} {
		if err := s.Add(newWorkout(t, id)); err != nil {
			t.Fatalf("add %q: %v", id, err)
		}
	}
	repl := newWorkout(t, "b")
	if err := s.Replace("b", repl); err != nil {
		t.Fatalf("replace: %v", err)
	}
	all := s.All()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[1] != repl {
		t.Error("replacement not at original position")
	}
	if all[0].ID != "a" || all[2].ID != "c" {
		t.Error("neighbors disturbed by replace")
	}
}

// TestReplaceUnknownID verifies replacing an absent id fails without
// inserting anything.
func TestReplaceUnknownID(t *testing.T) {
	s := New()
	if err := s.Replace("missing", newWorkout(t, "missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Errorf("len = %d, want 0", s.Len())
	}
}

// TestRemove verifies deletion closes the gap and preserves order.
func TestRemove(t *testing.T) {
	s := New()
	for _, id := range []string{"a", "b", "c"} {
		if err := s.Add(newWorkout(t, id)); err != nil {
			t.Fatalf("add %q: %v", id, err)
		}
	}
	if err := s.Remove("b"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	all := s.All()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "c" {
		t.Errorf("remaining ids = %v, want [a c]", ids(all))
	}
	if err := s.Remove("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove err = %v, want ErrNotFound", err)
	}
}

// TestClear verifies Clear empties the store and is safe to repeat.
func TestClear(t *testing.T) {
	s := New()
	if err := s.Add(newWorkout(t, "a")); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("len = %d, want 0", s.Len())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("len after double clear = %d, want 0", s.Len())
	}
}

// TestAllReturnsCopy verifies mutating the returned slice does not touch
// the store.
func TestAllReturnsCopy(t *testing.T) {
	s := New()
	if err := s.Add(newWorkout(t, "a")); err != nil {
		t.Fatalf("add: %v", err)
	}
	all := s.All()
	all[0] = nil
	if got, err := s.Get("a"); err != nil || got == nil {
		t.Errorf("store affected by caller mutation: got %v, err %v", got, err)
	}
}

func ids(ws []*models.Workout) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}
