package tracker

import (
	"fmt"
	"strconv"

	"github.com/meltforce/waytrack/internal/models"
)

// MarkerHandle identifies a placed marker to the MapView that created it.
type MarkerHandle any

// MapView is the map-widget collaborator. Rendering, popups and animation
// live outside the core; the tracker only places, removes and centers.
type MapView interface {
	CenterOn(pos models.Position, zoom int)
	AddMarker(pos models.Position, popup, style string) MarkerHandle
	RemoveMarker(h MarkerHandle)
}

// ListView is the list-rendering collaborator.
type ListView interface {
	// Render appends one entry for w after any existing entries.
	Render(w *models.Workout)
	// ClearAll removes every rendered entry.
	ClearAll()
}

// MemoryMarker is one marker tracked by a MemoryMap.
type MemoryMarker struct {
	Pos   models.Position
	Popup string
	Style string
}

// MemoryMap is a headless MapView. It tracks live markers and counts
// placements and removals so sync behavior stays observable without a
// rendering engine.
type MemoryMap struct {
	Center   models.Position
	Zoom     int
	Centered bool
	Placed   int
	Removed  int

	next    int
	markers map[int]MemoryMarker
}

// NewMemoryMap returns an empty headless map.
func NewMemoryMap() *MemoryMap {
	return &MemoryMap{markers: make(map[int]MemoryMarker)}
}

func (m *MemoryMap) CenterOn(pos models.Position, zoom int) {
	m.Center, m.Zoom, m.Centered = pos, zoom, true
}

func (m *MemoryMap) AddMarker(pos models.Position, popup, style string) MarkerHandle {
	m.next++
	m.markers[m.next] = MemoryMarker{Pos: pos, Popup: popup, Style: style}
	m.Placed++
	return m.next
}

func (m *MemoryMap) RemoveMarker(h MarkerHandle) {
	id, ok := h.(int)
	if !ok {
		return
	}
	if _, live := m.markers[id]; live {
		delete(m.markers, id)
		m.Removed++
	}
}

// Count returns the number of live markers.
func (m *MemoryMap) Count() int {
	return len(m.markers)
}

// Markers returns the live markers in no particular order.
func (m *MemoryMap) Markers() []MemoryMarker {
	out := make([]MemoryMarker, 0, len(m.markers))
	for _, mk := range m.markers {
		out = append(out, mk)
	}
	return out
}

// ListEntry is one rendered row: a title plus display fields keyed by
// stable names rather than positional order.
type ListEntry struct {
	ID     string
	Title  string
	Type   models.Type
	Fields map[string]string
}

// MemoryList is a headless ListView that retains rendered entries in render
// order.
type MemoryList struct {
	entries []ListEntry
}

// NewMemoryList returns an empty headless list.
func NewMemoryList() *MemoryList {
	return &MemoryList{}
}

func (l *MemoryList) Render(w *models.Workout) {
	e := ListEntry{
		ID:    w.ID,
		Title: w.Description,
		Type:  w.Type,
		Fields: map[string]string{
			"distance": fmt.Sprintf("%s km", trimFloat(w.DistanceKm)),
			"duration": fmt.Sprintf("%s min", trimFloat(w.DurationMin)),
		},
	}
	switch w.Type {
	case models.TypeRunning:
		e.Fields["pace"] = fmt.Sprintf("%.1f min/km", w.Running.PaceMinPerKm)
		e.Fields["cadence"] = fmt.Sprintf("%s spm", trimFloat(w.Running.CadenceSpm))
	case models.TypeCycling:
		e.Fields["speed"] = fmt.Sprintf("%.1f km/h", w.Cycling.SpeedKmPerH)
		e.Fields["elevation"] = fmt.Sprintf("%s m", trimFloat(w.Cycling.ElevationGainM))
	}
	l.entries = append(l.entries, e)
}

func (l *MemoryList) ClearAll() {
	l.entries = nil
}

// Entries returns rendered rows in render order.
func (l *MemoryList) Entries() []ListEntry {
	out := make([]ListEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns the number of rendered entries.
func (l *MemoryList) Count() int {
	return len(l.entries)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
