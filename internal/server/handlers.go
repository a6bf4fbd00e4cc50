package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/waytrack/internal/models"
	"github.com/meltforce/waytrack/internal/store"
	"github.com/meltforce/waytrack/internal/tracker"
)

// submitRequest carries the raw form values. Numeric fields stay strings:
// the factory owns parsing and validation, not the transport. Lat/lng are
// optional; when omitted the position captured by the last map click is
// used.
type submitRequest struct {
	Type     models.Type `json:"type"`
	Distance string      `json:"distance"`
	Duration string      `json:"duration"`
	Extra    string      `json:"extra"` // cadence (running) or elevation gain (cycling)
	Lat      *float64    `json:"lat,omitempty"`
	Lng      *float64    `json:"lng,omitempty"`
}

type clickRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ws := s.app.Workouts()
	snaps := make([]models.Snapshot, 0, len(ws))
	for _, wk := range ws {
		snaps = append(snaps, wk.ToSnapshot())
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	wk, err := s.app.Workout(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, wk.ToSnapshot())
}

func (s *Server) handleMapClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.app.MapClicked(models.Position{Lat: req.Lat, Lng: req.Lng})
	writeJSON(w, http.StatusOK, map[string]string{"status": "position captured"})
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	pos, ok := s.app.PendingPosition()
	if req.Lat != nil && req.Lng != nil {
		pos, ok = models.Position{Lat: *req.Lat, Lng: *req.Lng}, true
	}
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no position: click the map or supply lat/lng"})
		return
	}

	wk, err := s.app.SubmitWorkout(r.Context(), models.Input{
		Type:     req.Type,
		Distance: req.Distance,
		Duration: req.Duration,
		Extra:    req.Extra,
		Position: pos,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wk.ToSnapshot())
}

func (s *Server) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	prefill, err := s.app.BeginEdit(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, prefill)
}

func (s *Server) handleCommitEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if target, active := s.app.EditTarget(); !active || target != id {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no edit session for this workout"})
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	wk, err := s.app.CommitEdit(r.Context(), models.Input{
		Type:     req.Type,
		Distance: req.Distance,
		Duration: req.Duration,
		Extra:    req.Extra,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk.ToSnapshot())
}

func (s *Server) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	s.app.CancelEdit()
	writeJSON(w, http.StatusOK, map[string]string{"status": "edit cancelled"})
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleDeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteAll(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleSelectWorkout(w http.ResponseWriter, r *http.Request) {
	wk, err := s.app.Select(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wk.ToSnapshot())
}

// writeError maps core errors onto HTTP statuses. Validation problems are
// the client's to fix; a busy edit session is a conflict; an unknown id is
// a stale reference from the remote surface.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, tracker.ErrEditInProgress), errors.Is(err, tracker.ErrNoEditSession):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
