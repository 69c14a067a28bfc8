package rest

import (
	"notes-api/internal/api/swagger"

	"github.com/go-chi/chi/v5"
)

// NewRouter регистрирует маршруты API на chi роутере.
// serveSwagger включает эндпоинт /swagger.json с OpenAPI спецификацией
func NewRouter(h *Handler, serveSwagger bool) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/healthz", h.Healthz)

	r.Route("/api/v1/notes", func(r chi.Router) {
		r.Get("/", h.ListNotes)
		r.Post("/", h.CreateNote)
		r.Get("/events", h.StreamEvents)
		r.Get("/{id}", h.GetNote)
		r.Put("/{id}", h.UpdateNote)
		r.Delete("/{id}", h.DeleteNote)
	})

	if serveSwagger {
		r.Get("/swagger.json", swagger.Handler())
	}

	return r
}
