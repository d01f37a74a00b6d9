// Package http is the inbound HTTP adapter: routing, handlers and server
// lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/handlers"
)

// NewRouter mounts the health probes at the root and the processing API under
// /api/v1. Middlewares wrap every route, including the 404 and 405 responses.
func NewRouter(
	workItems *handlers.WorkItemHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatusProblem(w, req, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatusProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/epics/{id}/process", workItems.ProcessEpic)
		r.Post("/stories/{id}/process", workItems.ProcessStory)
		r.Post("/tasks/{id}/process", workItems.ProcessTask)
		r.Post("/work-items/process", workItems.ProcessBatch)
	})

	return r
}
