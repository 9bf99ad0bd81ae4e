// Package api exposes the progression engine to its view
// collaborators over JSON HTTP. The engine keeps no knowledge of the
// transport; every handler reads or mutates through the interfaces the
// engine already defines.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brightclass/brightclass/internal/catalog"
	"github.com/brightclass/brightclass/internal/exam"
	"github.com/brightclass/brightclass/internal/notify"
	"github.com/brightclass/brightclass/internal/platform/cache"
	"github.com/brightclass/brightclass/internal/progress"
)

// Server wires the engine's components to HTTP routes.
type Server struct {
	catalog *catalog.Catalog
	store   *progress.Store
	exams   *exam.Engine
	feed    *notify.Feed
	cache   *cache.Cache // nil when no view cache is configured
}

// NewServer creates an API server over the engine.
func NewServer(cat *catalog.Catalog, store *progress.Store, exams *exam.Engine, feed *notify.Feed, viewCache *cache.Cache) *Server {
	return &Server{
		catalog: cat,
		store:   store,
		exams:   exams,
		feed:    feed,
		cache:   viewCache,
	}
}

// Routes returns the HTTP router.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", handleReadyz)

	mux.HandleFunc("GET /api/courses", s.handleListCourses)
	mux.HandleFunc("GET /api/courses/{id}", s.handleGetCourse)
	mux.HandleFunc("GET /api/courses/{id}/progress", s.handleGetProgress)
	mux.HandleFunc("GET /api/courses/{id}/report.xlsx", s.handleCourseReport)
	mux.HandleFunc("POST /api/courses/{id}/sections/{sectionID}/toggle", s.handleToggleSection)
	mux.HandleFunc("GET /api/courses/{id}/lessons/{itemID}/access", s.handleLessonAccess)
	mux.HandleFunc("GET /api/courses/{id}/lessons/{itemID}/next", s.handleNextLesson)
	mux.HandleFunc("GET /api/courses/{id}/lessons/{itemID}/previous", s.handlePreviousLesson)
	mux.HandleFunc("POST /api/courses/{id}/lessons/{itemID}/progress", s.handleUpdateProgress)
	mux.HandleFunc("POST /api/courses/{id}/lessons/{itemID}/activate", s.handleActivateLesson)
	mux.HandleFunc("POST /api/courses/{id}/exam", s.handleSubmitExam)

	mux.HandleFunc("GET /api/notifications", s.handleListNotifications)
	mux.HandleFunc("POST /api/notifications/{id}/read", s.handleMarkNotificationRead)
	mux.HandleFunc("GET /ws/notifications", s.handleNotificationStream)

	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func handleReadyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
