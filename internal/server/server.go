package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/waytrack/internal/tracker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server adapts the form and list surfaces to HTTP: every route is one of
// the tracker's surface events (submit, edit, delete, select, map click)
// or a read of the store.
type Server struct {
	app    *tracker.App
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a Server with all routes configured.
func New(app *tracker.App, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		app:    app,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Reads are open; mutations require the API key.
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{id}", s.handleGetWorkout)

		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/map/click", s.handleMapClick)
			r.Post("/workouts", s.handleCreateWorkout)
			r.Post("/workouts/{id}/edit", s.handleBeginEdit)
			r.Put("/workouts/{id}", s.handleCommitEdit)
			r.Post("/edit/cancel", s.handleCancelEdit)
			r.Delete("/workouts/{id}", s.handleDeleteWorkout)
			r.Delete("/workouts", s.handleDeleteAll)
			r.Post("/workouts/{id}/select", s.handleSelectWorkout)
		})
	})

	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// MountMCP attaches the MCP transport under /mcp. Must be called before the
// server starts handling requests.
func (s *Server) MountMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}
