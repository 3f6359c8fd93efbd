package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/planline/planboard/internal/api/handlers"
	mw "github.com/planline/planboard/internal/api/middleware"
)

type Dependencies struct {
	BoardHandler       *handlers.BoardHandler
	ProjectsHandler    *handlers.ProjectsHandler
	ResourcesHandler   *handlers.ResourcesHandler
	AssignmentsHandler *handlers.AssignmentsHandler
	ExportHandler      *handlers.ExportHandler
	Hub                http.Handler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Live board updates
	if dep.Hub != nil {
		r.Handle("/ws", dep.Hub)
	}

	r.Route("/api/v1", func(api chi.Router) {
		// Projects
		api.Route("/projects", func(pr chi.Router) {
			pr.Get("/", dep.ProjectsHandler.List)
			pr.Post("/", dep.ProjectsHandler.Create)
			pr.Put("/{id}/color", dep.ProjectsHandler.SetColor)
		})

		// Resources
		api.Route("/resources", func(rr chi.Router) {
			rr.Get("/", dep.ResourcesHandler.List)
			rr.Get("/stats", dep.ResourcesHandler.Stats)
			rr.Post("/", dep.ResourcesHandler.Create)
			rr.Put("/{id}/field", dep.ResourcesHandler.UpdateField)
			rr.Put("/{id}/tags", dep.ResourcesHandler.UpdateTags)
			rr.Post("/{id}/toggle-active", dep.ResourcesHandler.ToggleActive)
			rr.Put("/{id}/color", dep.ResourcesHandler.SetColor)
		})

		// Assignments
		api.Route("/assignments", func(ar chi.Router) {
			ar.Post("/", dep.AssignmentsHandler.Create)
			ar.Delete("/{id}", dep.AssignmentsHandler.Delete)
			ar.Put("/{id}/move", dep.AssignmentsHandler.Move)
		})

		// Board grid and interactions
		api.Route("/board", func(br chi.Router) {
			br.Get("/window", dep.BoardHandler.Window)
			br.Get("/cells", dep.BoardHandler.Cells)
			br.Get("/summary", dep.BoardHandler.Summary)
			br.Post("/select", dep.BoardHandler.Select)
			br.Post("/copy", dep.BoardHandler.Copy)
			br.Post("/copy-project", dep.BoardHandler.CopyProject)
			br.Post("/paste", dep.BoardHandler.Paste)
			br.Post("/delete", dep.BoardHandler.DeleteCells)
			br.Post("/drop", dep.BoardHandler.Drop)
		})

		api.Post("/export", dep.ExportHandler.Enqueue)
		api.Post("/save", dep.BoardHandler.Save)
	})

	return r
}
