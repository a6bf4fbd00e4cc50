package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/meltforce/waytrack/internal/geo"
	"github.com/meltforce/waytrack/internal/models"
	"github.com/meltforce/waytrack/internal/store"
)

// App owns the application state: the store, the sync coordinator, the edit
// session and the pending map-click position. There are no package globals;
// everything hangs off this one value.
//
// The event model is one operation at a time. Operations serialize on an
// internal mutex so a concurrent transport (HTTP) cannot interleave a
// mutation with a view re-sync.
type App struct {
	mu      sync.Mutex
	store   *store.Store
	sync    *Coordinator
	session EditSession
	geo     geo.Provider
	log     *slog.Logger

	pendingPos models.Position
	hasPending bool
	acquiring  bool

	now func() time.Time
}

// NewApp wires the application together.
func NewApp(st *store.Store, coord *Coordinator, provider geo.Provider, log *slog.Logger) *App {
	return &App{
		store: st,
		sync:  coord,
		geo:   provider,
		log:   log,
		now:   time.Now,
	}
}

// Bootstrap hydrates the store from persisted storage. Runs once at
// startup, before any user events; first run and corrupt snapshots both
// yield an empty store.
func (a *App) Bootstrap(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sync.LoadAndHydrate(ctx)
}

// AcquirePosition starts the one-shot asynchronous position request. On
// success the map becomes usable and markers for hydrated records are
// drawn; on failure map features stay disabled while everything else keeps
// working. At most one request is outstanding.
func (a *App) AcquirePosition(ctx context.Context) {
	a.mu.Lock()
	if a.acquiring {
		a.mu.Unlock()
		return
	}
	a.acquiring = true
	a.mu.Unlock()

	go func() {
		pos, err := a.geo.CurrentPosition(ctx)
		a.mu.Lock()
		defer a.mu.Unlock()
		a.acquiring = false
		if err != nil {
			a.log.Warn("could not get position, map disabled", "error", err)
			return
		}
		a.sync.MapReady(pos)
	}()
}

// MapClicked records where the next created workout will be placed.
func (a *App) MapClicked(pos models.Position) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pendingPos, a.hasPending = pos, true
}

// PendingPosition returns the position captured by the last map click, if
// one is waiting to be consumed.
func (a *App) PendingPosition() (models.Position, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pendingPos, a.hasPending
}

// SubmitWorkout handles a create-form submission: validate, construct,
// append, re-sync views, persist. While an edit session is active the
// submission is rejected with ErrEditInProgress and nothing happens.
func (a *App) SubmitWorkout(ctx context.Context, in models.Input) (*models.Workout, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.Active() {
		return nil, ErrEditInProgress
	}

	w, err := models.New(in, a.now())
	if err != nil {
		return nil, err
	}
	if err := a.store.Add(w); err != nil {
		return nil, err
	}
	if err := a.sync.AfterCreate(ctx, w); err != nil {
		return nil, err
	}
	a.hasPending = false
	return w, nil
}

// BeginEdit opens an edit session on the record and returns its current
// values for prefilling the form. The store is not mutated.
func (a *App) BeginEdit(id string) (Prefill, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, err := a.store.Get(id)
	if err != nil {
		return Prefill{}, err
	}
	return a.session.Begin(w), nil
}

// EditTarget returns the id of the record under edit, if a session is
// active.
func (a *App) EditTarget() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.TargetID(), a.session.Active()
}

// CommitEdit validates the edited values and replaces the record in place,
// keeping its id and creation time. On validation failure the session stays
// active and nothing is mutated. Outside a session the commit is rejected.
func (a *App) CommitEdit(ctx context.Context, in models.Input) (*models.Workout, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.Active() {
		return nil, ErrNoEditSession
	}

	prev, err := a.store.Get(a.session.TargetID())
	if err != nil {
		return nil, err
	}
	w, err := models.Edited(prev, in)
	if err != nil {
		return nil, err
	}
	if err := a.store.Replace(prev.ID, w); err != nil {
		return nil, err
	}
	if err := a.sync.AfterEdit(ctx); err != nil {
		return nil, err
	}
	a.session.End()
	return w, nil
}

// CancelEdit discards the edit session without touching the store.
func (a *App) CancelEdit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session.End()
}

// Delete removes the record and re-syncs all views. An unknown id surfaces
// store.ErrNotFound before any view is touched. Deleting the record under
// edit also ends the session.
func (a *App) Delete(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Remove(id); err != nil {
		return err
	}
	if a.session.Active() && a.session.TargetID() == id {
		a.session.End()
	}
	return a.sync.AfterDelete(ctx)
}

// DeleteAll empties the store, clears both views and removes the persisted
// snapshot. Idempotent.
func (a *App) DeleteAll(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := a.store.Len()
	a.store.Clear()
	a.session.End()
	return a.sync.AfterDeleteAll(ctx, removed)
}

// Select centers the map on the record and bumps its interaction counter.
// The new count reaches storage with the next mutation's persist, matching
// the transient nature of selection.
func (a *App) Select(id string) (*models.Workout, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, err := a.store.Get(id)
	if err != nil {
		return nil, err
	}
	a.sync.CenterOn(w.Position)
	w.RecordInteraction()
	return w, nil
}

// Workouts returns all records in insertion order.
func (a *App) Workouts() []*models.Workout {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.All()
}

// Workout returns the record with the given id.
func (a *App) Workout(id string) (*models.Workout, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Get(id)
}
