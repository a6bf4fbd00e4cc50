// Package tracker implements the workout tracking core: the sync protocol
// that keeps map markers, the rendered list and persisted storage in
// lockstep with the in-memory store, the edit session state machine, and
// the application orchestrator that ties them together.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/meltforce/waytrack/internal/models"
	"github.com/meltforce/waytrack/internal/observability"
	"github.com/meltforce/waytrack/internal/storage"
	"github.com/meltforce/waytrack/internal/store"
)

// snapshotKey is the fixed storage key the full snapshot lives under.
const snapshotKey = "workouts"

// Coordinator re-derives the three dependent views — map markers, rendered
// list, persisted snapshot — from the store after every mutation. The
// ordering contract is fixed: the store mutates first, views re-sync next,
// persistence runs last.
type Coordinator struct {
	store   *store.Store
	kv      storage.Store
	mapView MapView
	list    ListView
	log     *slog.Logger
	zoom    int

	mapReady bool
	markers  []MarkerHandle
}

// NewCoordinator wires a coordinator to its store, storage and views.
func NewCoordinator(st *store.Store, kv storage.Store, mapView MapView, list ListView, zoom int, log *slog.Logger) *Coordinator {
	return &Coordinator{
		store:   st,
		kv:      kv,
		mapView: mapView,
		list:    list,
		log:     log,
		zoom:    zoom,
	}
}

// AfterCreate syncs views after a single append: one new marker, one new
// list entry, then a full snapshot persist. Existing markers and entries
// are untouched.
func (c *Coordinator) AfterCreate(ctx context.Context, w *models.Workout) error {
	if c.mapReady {
		c.placeMarker(w)
	}
	c.list.Render(w)
	observability.WorkoutCreated()
	return c.Persist(ctx)
}

// AfterEdit rebuilds both views from the full store, then persists. An edit
// may change the workout type, which swaps the marker style and the list
// field layout, so no incremental patching is attempted.
func (c *Coordinator) AfterEdit(ctx context.Context) error {
	c.redrawAll()
	observability.WorkoutEdited()
	return c.Persist(ctx)
}

// AfterDelete rebuilds both views from the surviving records, then
// persists. Markers are not removed individually; the whole set is
// discarded and redrawn.
func (c *Coordinator) AfterDelete(ctx context.Context) error {
	c.redrawAll()
	observability.WorkoutDeleted(1)
	return c.Persist(ctx)
}

// AfterDeleteAll clears both views and removes the persisted snapshot
// entirely rather than writing an empty one. Safe to call repeatedly.
func (c *Coordinator) AfterDeleteAll(ctx context.Context, removed int) error {
	c.redrawAll()
	if removed > 0 {
		observability.WorkoutDeleted(removed)
	}
	observability.SetStoreSize(0)
	if err := c.kv.Delete(ctx, snapshotKey); err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}

// Persist writes the full ordered store contents, derived fields included,
// under the snapshot key, overwriting any prior value.
func (c *Coordinator) Persist(ctx context.Context) error {
	data, err := models.EncodeSnapshots(c.store.All())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := c.kv.Write(ctx, snapshotKey, data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	observability.SnapshotPersisted()
	observability.SetStoreSize(c.store.Len())
	return nil
}

// LoadAndHydrate populates the store from the persisted snapshot and
// renders the list once, in stored order. A missing, unreadable or invalid
// snapshot hydrates an empty store: first run and corrupt data degrade the
// same way, never fatally. Markers wait for MapReady.
func (c *Coordinator) LoadAndHydrate(ctx context.Context) {
	data, err := c.kv.Read(ctx, snapshotKey)
	if errors.Is(err, storage.ErrAbsent) {
		return
	}
	if err != nil {
		c.log.Warn("snapshot unreadable, starting empty", "error", err)
		return
	}

	ws, err := models.DecodeSnapshots(data)
	if err != nil {
		c.log.Warn("snapshot invalid, starting empty", "error", err)
		return
	}

	for _, w := range ws {
		if err := c.store.Add(w); err != nil {
			c.log.Warn("snapshot has duplicate ids, starting empty", "id", w.ID)
			c.store.Clear()
			c.list.ClearAll()
			return
		}
		c.list.Render(w)
	}
	observability.SetStoreSize(c.store.Len())
}

// MapReady marks the map usable, centers it on the resolved position, and
// draws markers for any records hydrated before the position arrived.
func (c *Coordinator) MapReady(pos models.Position) {
	c.mapReady = true
	c.mapView.CenterOn(pos, c.zoom)
	c.redrawMarkers()
}

// CenterOn pans the map to a record's position. No-op until the map is
// ready.
func (c *Coordinator) CenterOn(pos models.Position) {
	if !c.mapReady {
		return
	}
	c.mapView.CenterOn(pos, c.zoom)
}

// MarkerCount returns the number of markers the coordinator tracks.
func (c *Coordinator) MarkerCount() int {
	return len(c.markers)
}

func (c *Coordinator) placeMarker(w *models.Workout) {
	h := c.mapView.AddMarker(w.Position, w.Description, string(w.Type)+"-popup")
	c.markers = append(c.markers, h)
}

func (c *Coordinator) redrawAll() {
	c.list.ClearAll()
	for _, w := range c.store.All() {
		c.list.Render(w)
	}
	c.redrawMarkers()
	observability.FullRedraw()
}

func (c *Coordinator) redrawMarkers() {
	if !c.mapReady {
		return
	}
	for _, h := range c.markers {
		c.mapView.RemoveMarker(h)
	}
	c.markers = c.markers[:0]
	for _, w := range c.store.All() {
		c.placeMarker(w)
	}
}
