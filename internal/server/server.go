package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/ftracker/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SessionStore abstracts the session repository for HTTP handlers.
type SessionStore interface {
	SaveSession(ctx context.Context, s storage.Session) error
	QuerySessions(ctx context.Context, start, end time.Time, typeFilter string) ([]storage.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*storage.Session, error)
	SessionStats(ctx context.Context, start, end time.Time) ([]storage.TypeStats, error)
}

// Compile-time check: *storage.DB satisfies SessionStore.
var _ SessionStore = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  SessionStore
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store SessionStore, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
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

	// Sensor package ingest (API key required)
	s.router.Route("/api/v1/packages", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handlePackageIngest)
	})

	// Session queries
	s.router.Get("/api/v1/sessions", s.handleQuerySessions)
	s.router.Get("/api/v1/sessions/stats", s.handleSessionStats)
	s.router.Get("/api/v1/sessions/{id}", s.handleGetSession)
	s.router.Get("/api/v1/healthz", s.handleHealthz)
}
